package canvasmarkers

import (
	"maps"
	"reflect"
	"slices"

	"github.com/paulmach/orb"
)

// DefaultDataKey is the descriptor field MarkerSet compares by default.
const DefaultDataKey = "position"

// MarkerDescriptor declares one marker of a MarkerSet.
type MarkerDescriptor struct {
	ID       string
	Position orb.Point
	Icon     *Icon
	// Popup is the popup content. Empty means no popup.
	Popup string
	Data  map[string]any
}

// value returns the descriptor field named key. Unknown keys are looked up
// in Data.
func (d MarkerDescriptor) value(key string) any {
	switch key {
	case "position":
		return d.Position
	case "icon":
		return d.Icon
	case "id":
		return d.ID
	case "popup":
		return d.Popup
	default:
		return d.Data[key]
	}
}

// MarkerSetOptions configures a MarkerSet.
type MarkerSetOptions struct {
	// DataKey selects the descriptor field compared between syncs.
	// Default "position".
	DataKey string
	// OnMarkerClick is registered as a click listener on the layer.
	OnMarkerClick ClickListener
}

// MarkerSet keeps a CanvasIconLayer in step with a declarative list of
// marker descriptors. A new list only causes a repaint when it differs from
// the previous one by the configured data key.
type MarkerSet struct {
	layer   *CanvasIconLayer
	dataKey string
	prev    []MarkerDescriptor
	byID    map[string]*Marker
}

// NewMarkerSet wraps layer.
func NewMarkerSet(layer *CanvasIconLayer, opts MarkerSetOptions) *MarkerSet {
	if opts.DataKey == "" {
		opts.DataKey = DefaultDataKey
	}
	if opts.OnMarkerClick != nil {
		layer.AddOnClickListener(opts.OnMarkerClick)
	}
	return &MarkerSet{
		layer:   layer,
		dataKey: opts.DataKey,
		byID:    make(map[string]*Marker),
	}
}

// Layer returns the wrapped layer.
func (s *MarkerSet) Layer() *CanvasIconLayer {
	return s.layer
}

// Attach adds the layer to m.
func (s *MarkerSet) Attach(m Map) {
	s.layer.OnAdd(m)
}

// Detach removes the layer from m.
func (s *MarkerSet) Detach(m Map) {
	s.layer.OnRemove(m)
}

// MarkerByID returns the marker created for the descriptor with the given
// ID by the last repainting Sync, or nil.
func (s *MarkerSet) MarkerByID(id string) *Marker {
	return s.byID[id]
}

// Sync replaces the declared markers with descs. When descs differs from
// the previous list, the layer's markers are rebuilt and repainted. It
// reports whether that happened.
func (s *MarkerSet) Sync(descs []MarkerDescriptor) bool {
	changed := !s.equal(s.prev, descs)
	s.prev = cloneDescriptors(descs)
	if !changed {
		return false
	}

	s.layer.ClearMarkers()
	clear(s.byID)
	for _, d := range descs {
		m := NewMarker(d.Position, d.Icon)
		m.Data = d.Data
		if d.Popup != "" {
			m.BindPopup(NewPopup(d.Popup))
		}
		s.layer.AddMarker(m)
		if d.ID != "" {
			s.byID[d.ID] = m
		}
	}
	s.layer.Redraw()
	return true
}

// cloneDescriptors copies descs so that callers may reuse and edit their
// slice between syncs. Data maps are copied one level deep.
func cloneDescriptors(descs []MarkerDescriptor) []MarkerDescriptor {
	out := slices.Clone(descs)
	for i := range out {
		out[i].Data = maps.Clone(out[i].Data)
	}
	return out
}

// equal compares two descriptor lists by the data key only. Two empty
// lists are equal.
func (s *MarkerSet) equal(from, to []MarkerDescriptor) bool {
	if len(from) != len(to) {
		return false
	}
	for i := range from {
		if !reflect.DeepEqual(from[i].value(s.dataKey), to[i].value(s.dataKey)) {
			return false
		}
	}
	return true
}
