package canvasmarkers

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/paulmach/orb"
)

// --- fakeMap ---

// fakeMap projects (lon, lat) straight to container pixels (x = lon,
// y = lat) shifted by offset, which tests change to simulate panning.
type fakeMap struct {
	size         Point
	offset       Point
	panes        map[string]*fakePane
	handlers     map[EventType][]*fakeSub
	popup        *Popup
	popupOpens   int
	zoomAnimated bool
}

func newFakeMap(w, h float64) *fakeMap {
	return &fakeMap{
		size: Pt(w, h),
		panes: map[string]*fakePane{
			DefaultPane:  {},
			"markerPane": {},
		},
		handlers: make(map[EventType][]*fakeSub),
	}
}

func (m *fakeMap) Size() Point { return m.size }

func (m *fakeMap) LatLngToContainerPoint(ll orb.Point) Point {
	return Pt(ll[0]+m.offset.X, ll[1]+m.offset.Y)
}

func (m *fakeMap) Pane(name string) Pane {
	p, ok := m.panes[name]
	if !ok {
		return nil
	}
	return p
}

func (m *fakeMap) On(t EventType, fn func(Event)) Subscription {
	s := &fakeSub{m: m, t: t, fn: fn}
	m.handlers[t] = append(m.handlers[t], s)
	return s
}

func (m *fakeMap) OpenPopup(p *Popup) {
	m.popup = p
	m.popupOpens++
}

func (m *fakeMap) ZoomAnimated() bool { return m.zoomAnimated }

func (m *fakeMap) fire(e Event) {
	for _, s := range slices.Clone(m.handlers[e.Type]) {
		s.fn(e)
	}
}

func (m *fakeMap) moveEnd()   { m.fire(Event{Type: EventMoveEnd}) }
func (m *fakeMap) zoomStart() { m.fire(Event{Type: EventZoomStart}) }

func (m *fakeMap) click(x, y float64) {
	m.fire(Event{Type: EventClick, ContainerPoint: Pt(x, y)})
}

func (m *fakeMap) hover(x, y float64) {
	m.fire(Event{Type: EventMouseMove, ContainerPoint: Pt(x, y)})
}

type fakeSub struct {
	m  *fakeMap
	t  EventType
	fn func(Event)
}

func (s *fakeSub) Remove() {
	hs := s.m.handlers[s.t]
	if i := slices.Index(hs, s); i >= 0 {
		s.m.handlers[s.t] = slices.Delete(hs, i, i+1)
	}
}

type fakePane struct {
	children []*Surface
}

func (p *fakePane) AppendChild(s *Surface) { p.children = append(p.children, s) }

func (p *fakePane) RemoveChild(s *Surface) {
	if i := slices.Index(p.children, s); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
}

// --- manualLoader ---

// manualLoader records load requests; tests complete them explicitly.
type manualLoader struct {
	reqs []loadRequest
}

type loadRequest struct {
	src  string
	done func(*ebiten.Image)
}

func (l *manualLoader) Load(src string, done func(*ebiten.Image)) {
	l.reqs = append(l.reqs, loadRequest{src: src, done: done})
}

// completeAll finishes every outstanding request with a 4x4 texture.
func (l *manualLoader) completeAll() {
	reqs := l.reqs
	l.reqs = nil
	for _, r := range reqs {
		r.done(testTexture)
	}
}

var testTexture = ebiten.NewImage(4, 4)

// --- helpers ---

// testIcon is 20x20 anchored at its centre.
func testIcon() *Icon {
	return &Icon{URL: "pin.png", Size: Pt(20, 20), Anchor: Pt(10, 10)}
}

// newTestLayer returns a layer with a manual loader attached to an 800x600
// fake map.
func newTestLayer(opts LayerOptions) (*CanvasIconLayer, *fakeMap, *manualLoader) {
	loader := &manualLoader{}
	if opts.Loader == nil {
		opts.Loader = loader
	}
	l := NewCanvasIconLayer(opts)
	m := newFakeMap(800, 600)
	return l, m, loader
}

// loadedMarkers attaches l to m, adds markers at the given points with the
// test icon, and completes their glyph loads.
func loadedMarkers(l *CanvasIconLayer, m *fakeMap, loader *manualLoader, pts ...Point) []*Marker {
	var out []*Marker
	for _, p := range pts {
		mk := NewMarker(orb.Point{p.X, p.Y}, testIcon())
		l.AddMarker(mk)
		out = append(out, mk)
	}
	l.OnAdd(m)
	loader.completeAll()
	l.Redraw()
	return out
}
