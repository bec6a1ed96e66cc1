package mapview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/canvasmarkers"
)

const defaultDragDeadZone = 4.0 // pixels

// pointerState tracks the mouse between frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	button   canvasmarkers.MouseButton // button captured at press time
	seen     bool
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a pan instead of a click.
func (v *View) SetDragDeadZone(pixels float64) {
	v.dragDeadZone = pixels
}

// processInput handles one frame of pointer input. Injected events take
// precedence over the real mouse.
func (v *View) processInput() {
	if v.processInjectedInput() {
		return
	}
	v.processMouse()
}

// processMouse reads the real mouse and wheel.
func (v *View) processMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button canvasmarkers.MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = canvasmarkers.MouseButtonLeft
		} else if right {
			button = canvasmarkers.MouseButtonRight
		} else {
			button = canvasmarkers.MouseButtonMiddle
		}
	}
	v.processPointer(x, y, pressed, button)

	if _, wy := ebiten.Wheel(); wy != 0 && !v.pointer.down {
		v.processWheel(x, y, wy)
	}
}

// processWheel zooms one level per wheel notch about the pointer.
func (v *View) processWheel(x, y, delta float64) {
	step := 1.0
	if delta < 0 {
		step = -1
	}
	v.zoomAround(canvasmarkers.Pt(x, y), math.Round(v.zoom)+step)
}

// processPointer runs the pointer state machine: hover moves fire
// mousemove, a press and release within the drag dead zone fires click,
// and a drag pans the map with a moveend on release.
func (v *View) processPointer(x, y float64, pressed bool, button canvasmarkers.MouseButton) {
	ps := &v.pointer
	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.dragging = false
		if moved {
			v.fireMouse(canvasmarkers.EventMouseMove, x, y, button)
		}
	case !pressed && ps.down:
		if ps.dragging {
			v.panBy(ps.lastX-x, ps.lastY-y)
			v.moveEnd()
		} else {
			v.ClosePopup()
			v.fireMouse(canvasmarkers.EventClick, x, y, ps.button)
		}
		ps.down = false
		ps.dragging = false
	case pressed && ps.down:
		if !moved {
			break
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > v.dragDeadZone {
				ps.dragging = true
				v.panBy(ps.startX-x, ps.startY-y)
			}
		} else {
			v.panBy(ps.lastX-x, ps.lastY-y)
		}
		v.fireMouse(canvasmarkers.EventMouseMove, x, y, ps.button)
	default:
		if moved {
			v.fireMouse(canvasmarkers.EventMouseMove, x, y, button)
		}
	}
	ps.lastX, ps.lastY = x, y
}

func (v *View) fireMouse(t canvasmarkers.EventType, x, y float64, button canvasmarkers.MouseButton) {
	p := canvasmarkers.Pt(x, y)
	v.fire(canvasmarkers.Event{
		Type:           t,
		ContainerPoint: p,
		LatLng:         v.ContainerPointToLatLng(p),
		Button:         button,
	})
}
