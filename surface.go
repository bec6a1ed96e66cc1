package canvasmarkers

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawCommand records a single glyph placed on a Surface.
type DrawCommand struct {
	MarkerID uint32
	// Dst is the destination rectangle in surface pixels.
	Dst   Rect
	image *ebiten.Image
}

// Surface is the single drawing area every marker of a layer is painted
// onto. It is backed by an ebiten.Image and keeps the list of glyphs drawn
// since the last clear, which is its visible content.
type Surface struct {
	width, height int
	img           *ebiten.Image
	commands      []DrawCommand

	interactive  bool
	zoomAnimated bool
}

// newSurface creates a surface of the given size.
func newSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// Resize reallocates the backing image when the dimensions change, which
// discards its content. Same-size calls are no-ops. Returns whether a
// reallocation happened.
func (s *Surface) Resize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if s.img != nil && w == s.width && h == s.height {
		return false
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height = w, h
	s.commands = s.commands[:0]
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
	return true
}

// Clear erases the surface content without resizing.
func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
	s.commands = s.commands[:0]
}

// Blank reports whether nothing has been drawn since the last clear.
func (s *Surface) Blank() bool {
	return len(s.commands) == 0
}

// Commands returns the glyphs drawn since the last clear, in paint order.
// The returned slice MUST NOT be mutated.
func (s *Surface) Commands() []DrawCommand {
	return s.commands
}

// Image returns the backing image, or nil when the surface has no area.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Interactive reports whether the pointer is over a marker. Hosts use it
// to show a pointer cursor.
func (s *Surface) Interactive() bool {
	return s.interactive
}

func (s *Surface) setInteractive(v bool) {
	s.interactive = v
}

// ZoomAnimated reports whether the surface was created for a map with
// animated zoom.
func (s *Surface) ZoomAnimated() bool {
	return s.zoomAnimated
}

// drawImage scales src into dst. Zero-area destinations draw nothing.
func (s *Surface) drawImage(id uint32, src *ebiten.Image, dst Rect) {
	if src == nil || dst.Empty() {
		return
	}
	s.commands = append(s.commands, DrawCommand{MarkerID: id, Dst: dst, image: src})
	if s.img == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(src, &op)
}
