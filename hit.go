package canvasmarkers

// hitMarker reports whether the event's container point lies inside the
// glyph-sized rectangle centred on point. Edges count as inside. Glyphs
// with no area are never hit.
func (l *CanvasIconLayer) hitMarker(m *Marker, point Point, e Event) bool {
	size := l.iconFor(m).Size
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	return centeredRect(point, size).Contains(e.ContainerPoint.X, e.ContainerPoint.Y)
}

// hitTest scans markers in registration order and returns the first one
// hit by e, or nil. It returns nil while the surface is blanked for a zoom.
func (l *CanvasIconLayer) hitTest(e Event) *Marker {
	if l.m == nil || l.suspended {
		return nil
	}
	for _, id := range l.order {
		m := l.markers[id]
		point := l.m.LatLngToContainerPoint(m.LatLng())
		if l.hitMarker(m, point, e) {
			return m
		}
	}
	return nil
}

// MarkerAt returns the first registered marker whose glyph rectangle
// contains the container point p, using the same rules as click handling.
func (l *CanvasIconLayer) MarkerAt(p Point) *Marker {
	return l.hitTest(Event{Type: EventMouseMove, ContainerPoint: p})
}

// onMouseMove toggles the surface's interactive state depending on
// whether the pointer is over a marker.
func (l *CanvasIconLayer) onMouseMove(e Event) {
	if l.surface == nil {
		return
	}
	l.surface.setInteractive(l.hitTest(e) != nil)
}

// executeClickListeners runs every click listener for the first marker hit
// by e, then opens the marker's popup at its current position.
func (l *CanvasIconLayer) executeClickListeners(e Event) {
	m := l.hitTest(e)
	if m == nil {
		return
	}
	for _, fn := range l.onClick {
		fn(e, m)
	}
	if p := m.Popup(); p != nil {
		p.SetLatLng(m.LatLng()).OpenOn(l.m)
	}
}
