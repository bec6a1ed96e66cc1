package canvasmarkers

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// reset resizes the surface to the map size (which discards its content
// when the size changed) and repaints.
func (l *CanvasIconLayer) reset() {
	if l.m == nil || l.surface == nil {
		return
	}
	size := l.m.Size()
	l.surface.Resize(int(size.X), int(size.Y))
	l.Redraw()
}

// clearLayer blanks the surface for the duration of a zoom. The registry is
// untouched; the moveend that ends the zoom repaints.
func (l *CanvasIconLayer) clearLayer() {
	if l.surface == nil {
		return
	}
	l.surface.Clear()
	l.surface.setInteractive(false)
	l.suspended = true
}

// Redraw clears the surface and paints every registered marker in
// registration order. It does nothing while the layer is detached.
func (l *CanvasIconLayer) Redraw() {
	if !l.attached || l.m == nil || l.surface == nil {
		return
	}
	var t0 time.Time
	if l.debug {
		t0 = time.Now()
		l.stats = repaintStats{markers: len(l.order)}
	}

	l.surface.Clear()
	l.suspended = false
	for _, id := range l.order {
		l.drawMarker(l.markers[id])
	}

	if l.debug {
		l.stats.drawn = len(l.surface.commands)
		l.stats.duration = time.Since(t0)
		l.debugLog()
	}
}

// drawMarker paints m at its projected position, starting a glyph load the
// first time the marker is painted.
func (l *CanvasIconLayer) drawMarker(m *Marker) {
	pos := l.m.LatLngToContainerPoint(m.LatLng())

	if m.img == nil {
		handle := newGlyphImage(l.iconFor(m).URL)
		m.img = handle
		if l.debug {
			l.stats.loads++
		}
		l.opts.Loader.Load(handle.src, func(img *ebiten.Image) {
			handle.setImage(img)
			at := pos
			if l.opts.ReprojectOnLoad && l.m != nil {
				at = l.m.LatLngToContainerPoint(m.LatLng())
			}
			l.drawImage(m, handle, at)
		})
		return
	}
	l.drawImage(m, m.img, pos)
}

// drawImage places the glyph so its anchor lands on pos, scaled to the icon
// size. Incomplete images paint nothing.
func (l *CanvasIconLayer) drawImage(m *Marker, handle *GlyphImage, pos Point) {
	if l.surface == nil || !handle.Complete() {
		return
	}
	icon := l.iconFor(m)
	dst := Rect{
		X:      pos.X - icon.Anchor.X,
		Y:      pos.Y - icon.Anchor.Y,
		Width:  icon.Size.X,
		Height: icon.Size.Y,
	}
	l.surface.drawImage(m.ID, handle.Image(), dst)
}
