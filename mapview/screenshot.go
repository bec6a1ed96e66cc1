package mapview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/canvasmarkers"
	"golang.org/x/image/draw"
)

// shotEncoder trades file size for frame time; captures happen inside Draw.
var shotEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw. The PNG is written to ScreenshotDir with a timestamped name.
func (v *View) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, label)
}

// flushScreenshots reads the rendered frame once and saves a copy for every
// queued label.
func (v *View) flushScreenshots(screen *ebiten.Image) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	labels := v.screenshotQueue
	v.screenshotQueue = v.screenshotQueue[:0]

	if err := os.MkdirAll(v.ScreenshotDir, 0o755); err != nil {
		canvasmarkers.Logger().Warn("mapview: screenshot dir", "dir", v.ScreenshotDir, "err", err)
		return
	}
	frame := straightAlpha(readFrame(screen))
	now := time.Now()
	for _, label := range labels {
		path := filepath.Join(v.ScreenshotDir, screenshotName(now, label))
		if err := writePNG(path, frame); err != nil {
			canvasmarkers.Logger().Warn("mapview: screenshot", "label", label, "err", err)
			continue
		}
		canvasmarkers.Logger().Debug("mapview: screenshot", "path", path)
	}
}

// readFrame returns the screen's premultiplied pixels.
func readFrame(screen *ebiten.Image) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, screen.Bounds().Dx(), screen.Bounds().Dy()))
	screen.ReadPixels(frame.Pix)
	return frame
}

// straightAlpha converts premultiplied pixels to straight alpha, which is
// what PNG stores.
func straightAlpha(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Copy(dst, dst.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	return dst
}

// screenshotName builds "<stamp>_<label>.png". Stamps sort chronologically.
func screenshotName(at time.Time, label string) string {
	return at.Format("20060102_150405") + "_" + sanitizeLabel(label) + ".png"
}

// writePNG encodes img next to path and renames it into place, so a failed
// write never leaves a truncated file behind.
func writePNG(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shot-*.png")
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if err := shotEncoder.Encode(tmp, img); err != nil {
		return errors.Join(fmt.Errorf("screenshot %s: %w", path, err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.'. Everything else
// becomes '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	if label = strings.TrimSpace(label); label == "" {
		return "unlabeled"
	}
	return strings.Map(fileSafe, label)
}

func fileSafe(r rune) rune {
	switch {
	case r == '-', r == '.', '0' <= r && r <= '9', 'a' <= r|0x20 && r|0x20 <= 'z':
		return r
	}
	return '_'
}
