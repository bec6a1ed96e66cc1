package mapview

import (
	"github.com/paulmach/orb"
	"github.com/phanxgames/canvasmarkers"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultFlyDuration is used for animated wheel zoom, in seconds.
const defaultFlyDuration = 0.25

// flight holds the tweens of an animated view change. Positions are
// tweened in world pixels at the target zoom so the path is straight on
// screen.
type flight struct {
	tweenX, tweenY, tweenZ *gween.Tween
	doneX, doneY, doneZ    bool
	target                 orb.Point
	targetZoom             float64
}

// FlyTo animates the view to center and zoom over duration seconds.
// zoomstart fires immediately when the zoom changes and moveend fires when
// the animation ends. A duration <= 0 behaves like SetView.
func (v *View) FlyTo(center orb.Point, zoom float64, duration float32) {
	zoom = clamp(zoom, v.opts.MinZoom, v.opts.MaxZoom)
	if duration <= 0 {
		v.SetView(center, zoom)
		return
	}
	from := project(v.center, zoom)
	to := project(center, zoom)
	if zoom != v.zoom {
		v.fire(canvasmarkers.Event{Type: canvasmarkers.EventZoomStart})
	}
	v.fly = &flight{
		tweenX:     gween.New(float32(from[0]), float32(to[0]), duration, ease.InOutQuad),
		tweenY:     gween.New(float32(from[1]), float32(to[1]), duration, ease.InOutQuad),
		tweenZ:     gween.New(float32(v.zoom), float32(zoom), duration, ease.InOutQuad),
		target:     center,
		targetZoom: zoom,
	}
}

// Flying reports whether a FlyTo animation is running.
func (v *View) Flying() bool {
	return v.fly != nil
}

// updateFlight advances the running animation by dt seconds.
func (v *View) updateFlight(dt float32) {
	f := v.fly
	if f == nil {
		return
	}
	var x, y, z float32
	x, f.doneX = f.tweenX.Update(dt)
	y, f.doneY = f.tweenY.Update(dt)
	z, f.doneZ = f.tweenZ.Update(dt)

	v.center = unproject(orb.Point{float64(x), float64(y)}, f.targetZoom)
	v.zoom = float64(z)

	if f.doneX && f.doneY && f.doneZ {
		v.center = f.target
		v.zoom = f.targetZoom
		v.fly = nil
		v.moveEnd()
	}
}
