// Package ecs bridges canvasmarkers click events into a [Donburi] world.
//
// [NewClickBridge] registers a click listener on a layer that publishes a
// [MarkerClickEvent] for every marker click. Subscribe to
// [MarkerClickEventType] in your ECS systems to receive them.
//
// Usage:
//
//	ecs.NewClickBridge(world, layer)
//	ecs.MarkerClickEventType.Subscribe(world, func(w donburi.World, e ecs.MarkerClickEvent) {
//		// ...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
