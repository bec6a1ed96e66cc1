package canvasmarkers

import "github.com/paulmach/orb"

// Popup is a text balloon anchored to a geographic position. Opening and
// drawing it is the host map's job; the layer only repositions it and asks
// the map to open it.
type Popup struct {
	Content string
	// Offset shifts the balloon relative to its anchor, in pixels.
	Offset Point

	latlng orb.Point
}

// NewPopup creates a popup with the given content.
func NewPopup(content string) *Popup {
	return &Popup{Content: content}
}

// SetLatLng moves the popup anchor and returns the popup for chaining.
func (p *Popup) SetLatLng(ll orb.Point) *Popup {
	p.latlng = ll
	return p
}

// LatLng returns the popup anchor.
func (p *Popup) LatLng() orb.Point {
	return p.latlng
}

// OpenOn opens the popup on m.
func (p *Popup) OpenOn(m Map) *Popup {
	m.OpenPopup(p)
	return p
}
