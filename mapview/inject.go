package mapview

import "github.com/phanxgames/canvasmarkers"

// syntheticPointerEvent is a single injected pointer event in container
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  canvasmarkers.MouseButton
}

// InjectHover queues a pointer move with no button held.
func (v *View) InjectHover(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a left button press at (x, y). Each injected event
// is consumed by one Update.
func (v *View) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  canvasmarkers.MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (v *View) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  canvasmarkers.MouseButtonLeft,
	})
}

// InjectRelease queues a button release at (x, y).
func (v *View) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		button: canvasmarkers.MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (v *View) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). Minimum frames is 2.
func (v *View) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// PendingInput returns the number of injected events not yet consumed.
func (v *View) PendingInput() int {
	return len(v.injectQueue)
}

// processInjectedInput pops one injected event and feeds it through the
// pointer state machine. Returns true if an event was consumed.
func (v *View) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
