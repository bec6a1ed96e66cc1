package canvasmarkers

// DefaultPane is the pane a layer attaches to when LayerOptions.Pane is empty.
const DefaultPane = "overlayPane"

// ClickListener receives the originating click event and the marker hit.
type ClickListener func(e Event, m *Marker)

// LayerOptions configures a CanvasIconLayer. Zero values select defaults.
type LayerOptions struct {
	// Pane names the map pane the surface is appended to. Default "overlayPane".
	Pane string
	// Icon is used for markers whose own Icon is nil.
	Icon *Icon
	// Loader fetches glyph images. Default is an AsyncLoader with default options.
	Loader ImageLoader
	// ReprojectOnLoad draws a glyph whose image finished loading at the
	// marker's current projected position instead of the position captured
	// when the load was requested.
	ReprojectOnLoad bool
}

// CanvasIconLayer draws every registered marker onto one shared Surface and
// recovers hover and click by hit-testing pointer events against the
// markers' glyph rectangles.
//
// All methods must be called from the host's UI goroutine.
type CanvasIconLayer struct {
	opts LayerOptions

	markers map[uint32]*Marker
	order   []uint32

	m        Map
	surface  *Surface
	attached bool
	subs     []Subscription

	// suspended is set while the surface is blanked for a zoom and cleared
	// by the next repaint. Hit-testing is skipped while it is set.
	suspended bool

	onClick []ClickListener

	debug bool
	stats repaintStats
}

// NewCanvasIconLayer creates a detached layer.
func NewCanvasIconLayer(opts LayerOptions) *CanvasIconLayer {
	if opts.Pane == "" {
		opts.Pane = DefaultPane
	}
	if opts.Loader == nil {
		opts.Loader = NewAsyncLoader(LoaderOptions{})
	}
	return &CanvasIconLayer{
		opts:    opts,
		markers: make(map[uint32]*Marker),
	}
}

// --- Registry ---

// AddMarker registers m, assigning it an ID if it has none. Re-adding a
// registered marker keeps its place in the paint order. No repaint happens
// until Redraw or the next moveend.
func (l *CanvasIconLayer) AddMarker(m *Marker) {
	id := m.stamp()
	if _, ok := l.markers[id]; !ok {
		l.order = append(l.order, id)
	}
	l.markers[id] = m
}

// RemoveMarker unregisters m. Unknown markers are ignored. The marker's
// cached image handle is dropped so re-adding it loads a fresh one.
func (l *CanvasIconLayer) RemoveMarker(m *Marker) {
	if m == nil {
		return
	}
	if _, ok := l.markers[m.ID]; !ok {
		return
	}
	delete(l.markers, m.ID)
	for i, id := range l.order {
		if id == m.ID {
			copy(l.order[i:], l.order[i+1:])
			l.order = l.order[:len(l.order)-1]
			break
		}
	}
	m.img = nil
}

// ClearMarkers unregisters every marker.
func (l *CanvasIconLayer) ClearMarkers() {
	for _, id := range l.order {
		l.markers[id].img = nil
	}
	clear(l.markers)
	l.order = l.order[:0]
}

// Marker returns the registered marker with the given ID, or nil.
func (l *CanvasIconLayer) Marker(id uint32) *Marker {
	return l.markers[id]
}

// Markers returns the registered markers in registration order.
func (l *CanvasIconLayer) Markers() []*Marker {
	out := make([]*Marker, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.markers[id])
	}
	return out
}

// Len returns the number of registered markers.
func (l *CanvasIconLayer) Len() int {
	return len(l.order)
}

// AddOnClickListener registers fn to run when a click hits a marker.
// Listeners cannot be removed.
func (l *CanvasIconLayer) AddOnClickListener(fn ClickListener) {
	l.onClick = append(l.onClick, fn)
}

// --- Lifecycle ---

// OnAdd attaches the layer to m. It creates the surface on first use,
// appends it to the configured pane, subscribes to map events and paints.
// Calling OnAdd while attached does nothing.
func (l *CanvasIconLayer) OnAdd(m Map) {
	if l.attached {
		return
	}
	l.m = m
	if l.surface == nil {
		l.initSurface()
	}
	l.surface.zoomAnimated = m.ZoomAnimated()
	if p := m.Pane(l.opts.Pane); p != nil {
		p.AppendChild(l.surface)
	}

	l.subs = append(l.subs[:0],
		m.On(EventMoveEnd, func(Event) { l.reset() }),
		m.On(EventZoomStart, func(Event) { l.clearLayer() }),
		m.On(EventClick, l.executeClickListeners),
		m.On(EventMouseMove, l.onMouseMove),
	)
	l.attached = true

	l.reset()
}

// OnRemove detaches the layer from m. The surface, registry and cached
// images are kept for the next OnAdd.
func (l *CanvasIconLayer) OnRemove(m Map) {
	if !l.attached {
		return
	}
	if p := m.Pane(l.opts.Pane); p != nil && l.surface != nil {
		p.RemoveChild(l.surface)
	}
	for _, s := range l.subs {
		s.Remove()
	}
	l.subs = l.subs[:0]
	l.attached = false
	if l.surface != nil {
		l.surface.setInteractive(false)
	}
}

// Attached reports whether the layer is on a map.
func (l *CanvasIconLayer) Attached() bool {
	return l.attached
}

// Surface returns the layer's drawing surface, or nil before the first OnAdd.
func (l *CanvasIconLayer) Surface() *Surface {
	return l.surface
}

// Update delivers finished glyph loads. Hosts call it once per tick.
func (l *CanvasIconLayer) Update() {
	if p, ok := l.opts.Loader.(Poller); ok {
		p.Poll()
	}
}

// SetDebugMode enables or disables per-repaint stats logging at debug level.
func (l *CanvasIconLayer) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// initSurface creates the surface at the map's current size.
func (l *CanvasIconLayer) initSurface() {
	size := l.m.Size()
	l.surface = newSurface(int(size.X), int(size.Y))
}

// iconFor resolves the glyph for m: its own icon, the layer default, or
// the zero icon.
func (l *CanvasIconLayer) iconFor(m *Marker) *Icon {
	if m.Icon != nil {
		return m.Icon
	}
	if l.opts.Icon != nil {
		return l.opts.Icon
	}
	return zeroIcon
}
