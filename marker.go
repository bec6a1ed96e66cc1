package canvasmarkers

import "github.com/paulmach/orb"

// markerIDCounter hands out process-unique marker IDs. Only the UI
// goroutine touches it.
var markerIDCounter uint32

func nextMarkerID() uint32 {
	markerIDCounter++
	return markerIDCounter
}

// Marker is a point drawn by a CanvasIconLayer. Markers carry no drawing
// state of their own beyond the cached glyph image handle.
type Marker struct {
	// ID is assigned on first registration when zero.
	ID uint32
	// Icon overrides the layer's default icon when non-nil.
	Icon *Icon
	// Data is free-form caller data, for example the properties of the
	// GeoJSON feature the marker came from.
	Data map[string]any

	latlng orb.Point
	popup  *Popup
	img    *GlyphImage
}

// NewMarker creates a marker at ll (longitude, latitude).
func NewMarker(ll orb.Point, icon *Icon) *Marker {
	return &Marker{latlng: ll, Icon: icon}
}

// stamp assigns an ID if the marker has none and returns it.
func (m *Marker) stamp() uint32 {
	if m.ID == 0 {
		m.ID = nextMarkerID()
	}
	return m.ID
}

// LatLng returns the marker position.
func (m *Marker) LatLng() orb.Point {
	return m.latlng
}

// SetLatLng moves the marker. The move shows up on the next repaint.
func (m *Marker) SetLatLng(ll orb.Point) *Marker {
	m.latlng = ll
	return m
}

// BindPopup attaches a popup that opens when the marker is clicked.
func (m *Marker) BindPopup(p *Popup) *Marker {
	m.popup = p
	return m
}

// UnbindPopup detaches the marker's popup.
func (m *Marker) UnbindPopup() *Marker {
	m.popup = nil
	return m
}

// Popup returns the bound popup, or nil.
func (m *Marker) Popup() *Popup {
	return m.popup
}

// Image returns the cached glyph image handle, or nil before the first
// repaint that included the marker.
func (m *Marker) Image() *GlyphImage {
	return m.img
}
