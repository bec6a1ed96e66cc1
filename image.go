package canvasmarkers

import "github.com/hajimehoshi/ebiten/v2"

// GlyphImage is a marker's handle on its decoded glyph. It is created the
// first time the marker is painted and filled in when the loader completes.
// Until then it is incomplete and paints nothing.
type GlyphImage struct {
	src      string
	img      *ebiten.Image
	complete bool
}

func newGlyphImage(src string) *GlyphImage {
	return &GlyphImage{src: src}
}

// Src returns the source URL the handle was created with.
func (g *GlyphImage) Src() string {
	return g.src
}

// Complete reports whether the image has finished loading.
func (g *GlyphImage) Complete() bool {
	return g.complete
}

// Image returns the decoded texture, or nil while loading.
func (g *GlyphImage) Image() *ebiten.Image {
	return g.img
}

func (g *GlyphImage) setImage(img *ebiten.Image) {
	g.img = img
	g.complete = img != nil
}
