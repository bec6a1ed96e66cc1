// Package glyph rasterizes simple marker glyphs with gg, for maps that have
// no icon files to load.
package glyph

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Pin returns a w x h teardrop map pin filled with fill, its tip at the
// bottom centre, with a white dot in the head.
func Pin(w, h int, fill color.Color) image.Image {
	dc := gg.NewContext(w, h)
	defer dc.Close()

	fw, fh := float64(w), float64(h)
	r := fw / 2
	if r > fh/2 {
		r = fh / 2
	}
	cx, cy := fw/2, r

	dc.SetColor(fill)
	dc.DrawCircle(cx, cy, r)
	_ = dc.Fill()

	dc.MoveTo(cx-r*0.8, cy+r*0.6)
	dc.LineTo(cx+r*0.8, cy+r*0.6)
	dc.LineTo(cx, fh)
	dc.ClosePath()
	_ = dc.Fill()

	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawCircle(cx, cy, r*0.4)
	_ = dc.Fill()

	return cloneImage(dc.Image())
}

// Dot returns a size x size filled circle with a 1px darker outline.
func Dot(size int, fill color.Color) image.Image {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	c := float64(size) / 2
	dc.SetColor(fill)
	dc.DrawCircle(c, c, c-1)
	_ = dc.FillPreserve()
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.SetLineWidth(1)
	_ = dc.Stroke()

	return cloneImage(dc.Image())
}

// cloneImage copies src into a standalone RGBA image so it outlives the
// context that drew it.
func cloneImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}
