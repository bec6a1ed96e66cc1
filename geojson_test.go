package canvasmarkers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const testFeatures = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "cafe-1",
     "geometry": {"type": "Point", "coordinates": [2.35, 48.85]},
     "properties": {"popup": "Café", "kind": "cafe"}},
    {"type": "Feature", "id": 42,
     "geometry": {"type": "Point", "coordinates": [-0.12, 51.5]},
     "properties": {"popup": 7}},
    {"type": "Feature",
     "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]},
     "properties": {}},
    {"type": "Feature",
     "geometry": {"type": "Point", "coordinates": [13.4, 52.5]},
     "properties": null}
  ]
}`

func TestDescriptorsFromGeoJSON(t *testing.T) {
	icon := testIcon()
	descs, err := DescriptorsFromGeoJSON([]byte(testFeatures), icon)
	if err != nil {
		t.Fatalf("DescriptorsFromGeoJSON: %v", err)
	}
	if len(descs) != 3 {
		t.Fatalf("descriptors = %d, want 3 (line string skipped)", len(descs))
	}

	cafe := descs[0]
	if cafe.ID != "cafe-1" {
		t.Errorf("id = %q, want cafe-1", cafe.ID)
	}
	if cafe.Position != (orb.Point{2.35, 48.85}) {
		t.Errorf("position = %v", cafe.Position)
	}
	if cafe.Popup != "Café" {
		t.Errorf("popup = %q, want Café", cafe.Popup)
	}
	if cafe.Data["kind"] != "cafe" {
		t.Errorf("data kind = %v", cafe.Data["kind"])
	}
	if cafe.Icon != icon {
		t.Error("descriptor should use the given icon")
	}

	if descs[1].ID != "42" {
		t.Errorf("numeric id = %q, want 42", descs[1].ID)
	}
	if descs[1].Popup != "" {
		t.Errorf("non-string popup property should be ignored, got %q", descs[1].Popup)
	}

	if _, err := uuid.Parse(descs[2].ID); err != nil {
		t.Errorf("missing id should become a uuid, got %q", descs[2].ID)
	}
}

func TestDescriptorsFromGeoJSONInvalid(t *testing.T) {
	_, err := DescriptorsFromGeoJSON([]byte(`{"type": "FeatureCollection", "features": [`), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "parse geojson:") {
		t.Errorf("error = %q, want parse geojson prefix", err)
	}
}

func TestGeoJSONIntoMarkerSet(t *testing.T) {
	descs, err := DescriptorsFromGeoJSON([]byte(testFeatures), testIcon())
	if err != nil {
		t.Fatal(err)
	}
	s, _, _ := newTestSet(MarkerSetOptions{})
	s.Sync(descs)

	if s.Layer().Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Layer().Len())
	}
	if mk := s.MarkerByID("cafe-1"); mk == nil || mk.Popup() == nil {
		t.Error("cafe-1 should be registered with a popup")
	}
}
