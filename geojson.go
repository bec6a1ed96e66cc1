package canvasmarkers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PopupProperty is the feature property used as popup content.
const PopupProperty = "popup"

// DescriptorsFromGeoJSON decodes a FeatureCollection into marker
// descriptors, one per Point feature, all using icon. Other geometries are
// skipped. Feature properties become Data; a string "popup" property
// becomes the popup content. Features without an id get a random UUID.
func DescriptorsFromGeoJSON(data []byte, icon *Icon) ([]MarkerDescriptor, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	descs := make([]MarkerDescriptor, 0, len(fc.Features))
	for _, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		d := MarkerDescriptor{
			ID:       featureID(f),
			Position: pt,
			Icon:     icon,
			Data:     map[string]any(f.Properties),
		}
		if s, ok := f.Properties[PopupProperty].(string); ok {
			d.Popup = s
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// featureID returns the feature id as a string, generating one if absent.
func featureID(f *geojson.Feature) string {
	switch id := f.ID.(type) {
	case nil:
		return uuid.NewString()
	case string:
		if id == "" {
			return uuid.NewString()
		}
		return id
	case float64:
		return fmt.Sprintf("%g", id)
	default:
		return fmt.Sprint(id)
	}
}
