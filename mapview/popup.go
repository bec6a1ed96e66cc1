package mapview

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font metrics used to size popup balloons.
const (
	debugGlyphW  = 6
	debugGlyphH  = 16
	popupPadding = 4
	popupGap     = 8
)

var popupBackground = color.RGBA{0x20, 0x20, 0x20, 0xe0}

// popupSize returns the balloon size for content.
func popupSize(content string) (w, h int) {
	lines := strings.Split(content, "\n")
	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}
	return longest*debugGlyphW + 2*popupPadding, len(lines)*debugGlyphH + 2*popupPadding
}

// drawPopup draws the open popup centred above its anchor. The balloon
// image is rebuilt only when the content changes.
func (v *View) drawPopup(screen *ebiten.Image) {
	p := v.popup
	if p == nil || p.Content == "" {
		return
	}
	if v.popupImg == nil || v.popupFor != p.Content {
		if v.popupImg != nil {
			v.popupImg.Deallocate()
		}
		w, h := popupSize(p.Content)
		v.popupImg = ebiten.NewImage(w, h)
		v.popupImg.Fill(popupBackground)
		ebitenutil.DebugPrintAt(v.popupImg, p.Content, popupPadding, popupPadding)
		v.popupFor = p.Content
	}

	at := v.LatLngToContainerPoint(p.LatLng())
	b := v.popupImg.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(
		at.X+p.Offset.X-float64(b.Dx())/2,
		at.Y+p.Offset.Y-float64(b.Dy())-popupGap,
	)
	screen.DrawImage(v.popupImg, &op)
}
