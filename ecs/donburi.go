package ecs

import (
	"github.com/phanxgames/canvasmarkers"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MarkerClickEvent is published for every marker click.
type MarkerClickEvent struct {
	MarkerID uint32
	// X and Y are the container point of the click.
	X, Y   float64
	Button canvasmarkers.MouseButton
	Marker *canvasmarkers.Marker
}

// MarkerClickEventType is the Donburi event type for marker clicks.
// Subscribe to it in your ECS systems and drain it with ProcessEvents.
var MarkerClickEventType = events.NewEventType[MarkerClickEvent]()

// NewClickBridge registers a click listener on layer that publishes every
// marker click to world.
func NewClickBridge(world donburi.World, layer *canvasmarkers.CanvasIconLayer) {
	layer.AddOnClickListener(func(e canvasmarkers.Event, m *canvasmarkers.Marker) {
		MarkerClickEventType.Publish(world, MarkerClickEvent{
			MarkerID: m.ID,
			X:        e.ContainerPoint.X,
			Y:        e.ContainerPoint.Y,
			Button:   e.Button,
			Marker:   m,
		})
	})
}
