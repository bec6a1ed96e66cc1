package mapview

import "github.com/phanxgames/canvasmarkers"

const numEventTypes = int(canvasmarkers.EventClick) + 1

type handler struct {
	id uint32
	fn func(canvasmarkers.Event)
}

type handlerRegistry struct {
	handlers [numEventTypes][]handler
	nextID   uint32
}

// subscription allows removing a registered event handler.
type subscription struct {
	id    uint32
	reg   *handlerRegistry
	event canvasmarkers.EventType
}

// Remove unregisters the handler so it no longer fires. Removing twice is
// harmless.
func (s subscription) Remove() {
	if s.reg == nil || int(s.event) >= numEventTypes {
		return
	}
	hs := s.reg.handlers[s.event]
	for i := range hs {
		if hs[i].id == s.id {
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = handler{}
			s.reg.handlers[s.event] = hs[:len(hs)-1]
			return
		}
	}
}

// add registers fn for t. Unknown event types get an inert subscription.
func (r *handlerRegistry) add(t canvasmarkers.EventType, fn func(canvasmarkers.Event)) subscription {
	if int(t) >= numEventTypes {
		return subscription{}
	}
	r.nextID++
	id := r.nextID
	r.handlers[t] = append(r.handlers[t], handler{id: id, fn: fn})
	return subscription{id: id, reg: r, event: t}
}

// fire dispatches e to a snapshot of the handlers for its type, so handlers
// may subscribe or unsubscribe while running.
func (r *handlerRegistry) fire(e canvasmarkers.Event) {
	if int(e.Type) >= numEventTypes {
		return
	}
	hs := r.handlers[e.Type]
	if len(hs) == 0 {
		return
	}
	snapshot := make([]handler, len(hs))
	copy(snapshot, hs)
	for _, h := range snapshot {
		h.fn(e)
	}
}

func (r *handlerRegistry) count(t canvasmarkers.EventType) int {
	if int(t) >= numEventTypes {
		return 0
	}
	return len(r.handlers[t])
}
