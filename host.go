package canvasmarkers

import "github.com/paulmach/orb"

// EventType identifies a map event.
type EventType uint8

const (
	EventMoveEnd   EventType = iota // fires when pan/zoom motion has settled
	EventZoomStart                  // fires when a zoom change begins
	EventMouseMove                  // fires when the pointer moves over the map
	EventClick                      // fires on press then release without a drag
)

// String returns the Leaflet-style event name.
func (e EventType) String() string {
	switch e {
	case EventMoveEnd:
		return "moveend"
	case EventZoomStart:
		return "zoomstart"
	case EventMouseMove:
		return "mousemove"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// Event is the payload delivered to map event handlers. Pointer fields are
// only meaningful for EventMouseMove and EventClick.
type Event struct {
	Type EventType
	// ContainerPoint is the pointer position relative to the map container.
	ContainerPoint Point
	// LatLng is the geographic position under the pointer.
	LatLng orb.Point
	Button MouseButton
}

// Subscription is returned by Map.On and removes the handler again.
type Subscription interface {
	Remove()
}

// Pane is a named attachment point for surfaces inside the host map.
type Pane interface {
	AppendChild(s *Surface)
	RemoveChild(s *Surface)
}

// Map is the host viewport a layer is attached to.
type Map interface {
	// Size returns the container size in pixels.
	Size() Point
	// LatLngToContainerPoint projects a (longitude, latitude) position to
	// container pixels.
	LatLngToContainerPoint(ll orb.Point) Point
	// Pane returns the named pane, or nil if the map has none by that name.
	Pane(name string) Pane
	// On subscribes fn to events of type t.
	On(t EventType, fn func(Event)) Subscription
	// OpenPopup shows p at its position, closing any other open popup.
	OpenPopup(p *Popup)
	// ZoomAnimated reports whether the map animates zoom changes.
	ZoomAnimated() bool
}

// Layer is anything a Map can host.
type Layer interface {
	OnAdd(m Map)
	OnRemove(m Map)
}
