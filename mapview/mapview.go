package mapview

import (
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/paulmach/orb"
	"github.com/phanxgames/canvasmarkers"
)

// Pane names, in draw order.
const (
	MapPane     = "mapPane"
	OverlayPane = "overlayPane"
	MarkerPane  = "markerPane"
	PopupPane   = "popupPane"
)

var paneOrder = []string{MapPane, OverlayPane, MarkerPane, PopupPane}

// Options configures a View. Zero values select defaults.
type Options struct {
	// Width and Height are the container size in pixels. Default 800x600.
	Width, Height int
	// Center is the initial (longitude, latitude) view centre.
	Center orb.Point
	// Zoom is the initial zoom level.
	Zoom float64
	// MinZoom and MaxZoom clamp zoom changes. Defaults 0 and 19.
	MinZoom, MaxZoom float64
	// ZoomAnimation makes wheel zoom fly instead of jump.
	ZoomAnimation bool
	// Background fills the container before panes are drawn.
	Background color.Color
}

// View is a Web Mercator map viewport drawn with Ebitengine. It implements
// canvasmarkers.Map.
type View struct {
	opts Options

	width, height int
	center        orb.Point
	zoom          float64

	// settledOrigin is the pixel origin at the last moveend. Surfaces are
	// drawn shifted by the difference to the current origin while panning.
	settledOrigin orb.Point
	settledZoom   float64

	panes    map[string]*pane
	layers   []canvasmarkers.Layer
	handlers handlerRegistry

	popup    *canvasmarkers.Popup
	popupImg *ebiten.Image
	popupFor string

	// Input state
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	script       *Script

	fly *flight

	// ScreenshotDir is where Screenshot writes PNG files. Default "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
}

// New creates a View.
func New(opts Options) *View {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = 19
	}
	if opts.Background == nil {
		opts.Background = color.RGBA{0xaa, 0xd3, 0xdf, 0xff}
	}
	v := &View{
		opts:          opts,
		width:         opts.Width,
		height:        opts.Height,
		center:        opts.Center,
		zoom:          clamp(opts.Zoom, opts.MinZoom, opts.MaxZoom),
		panes:         make(map[string]*pane, len(paneOrder)),
		dragDeadZone:  defaultDragDeadZone,
		ScreenshotDir: "screenshots",
	}
	for _, name := range paneOrder {
		v.panes[name] = &pane{name: name}
	}
	v.settle()
	return v
}

// --- canvasmarkers.Map ---

// Size returns the container size in pixels.
func (v *View) Size() canvasmarkers.Point {
	return canvasmarkers.Pt(float64(v.width), float64(v.height))
}

// LatLngToContainerPoint projects ll to container pixels.
func (v *View) LatLngToContainerPoint(ll orb.Point) canvasmarkers.Point {
	p := project(ll, v.zoom)
	o := v.pixelOrigin()
	return canvasmarkers.Pt(p[0]-o[0], p[1]-o[1])
}

// ContainerPointToLatLng converts container pixels back to a position.
func (v *View) ContainerPointToLatLng(p canvasmarkers.Point) orb.Point {
	o := v.pixelOrigin()
	return unproject(orb.Point{p.X + o[0], p.Y + o[1]}, v.zoom)
}

// Pane returns the named pane, or nil.
func (v *View) Pane(name string) canvasmarkers.Pane {
	p, ok := v.panes[name]
	if !ok {
		return nil
	}
	return p
}

// On subscribes fn to events of type t.
func (v *View) On(t canvasmarkers.EventType, fn func(canvasmarkers.Event)) canvasmarkers.Subscription {
	return v.handlers.add(t, fn)
}

// HandlerCount returns the number of handlers subscribed to t.
func (v *View) HandlerCount(t canvasmarkers.EventType) int {
	return v.handlers.count(t)
}

// OpenPopup shows p, replacing any open popup.
func (v *View) OpenPopup(p *canvasmarkers.Popup) {
	v.popup = p
}

// ClosePopup hides the open popup, if any.
func (v *View) ClosePopup() {
	v.popup = nil
}

// Popup returns the open popup, or nil.
func (v *View) Popup() *canvasmarkers.Popup {
	return v.popup
}

// ZoomAnimated reports whether wheel zoom is animated.
func (v *View) ZoomAnimated() bool {
	return v.opts.ZoomAnimation
}

// --- Layers ---

// AddLayer attaches l. Adding a layer twice does nothing.
func (v *View) AddLayer(l canvasmarkers.Layer) {
	if slices.Contains(v.layers, l) {
		return
	}
	v.layers = append(v.layers, l)
	l.OnAdd(v)
}

// RemoveLayer detaches l. Unknown layers are ignored.
func (v *View) RemoveLayer(l canvasmarkers.Layer) {
	i := slices.Index(v.layers, l)
	if i < 0 {
		return
	}
	v.layers = slices.Delete(v.layers, i, i+1)
	l.OnRemove(v)
}

// HasLayer reports whether l is attached.
func (v *View) HasLayer(l canvasmarkers.Layer) bool {
	return slices.Contains(v.layers, l)
}

// --- View state ---

// Center returns the view centre.
func (v *View) Center() orb.Point {
	return v.center
}

// Zoom returns the current zoom level.
func (v *View) Zoom() float64 {
	return v.zoom
}

// SetView jumps to center and zoom. A zoom change fires zoomstart first;
// moveend always fires.
func (v *View) SetView(center orb.Point, zoom float64) {
	v.fly = nil
	zoom = clamp(zoom, v.opts.MinZoom, v.opts.MaxZoom)
	if zoom != v.zoom {
		v.fire(canvasmarkers.Event{Type: canvasmarkers.EventZoomStart})
	}
	v.center = center
	v.zoom = zoom
	v.moveEnd()
}

// SetZoom changes the zoom keeping the centre.
func (v *View) SetZoom(zoom float64) {
	v.SetView(v.center, zoom)
}

// PanBy moves the view by (dx, dy) pixels and fires moveend.
func (v *View) PanBy(dx, dy float64) {
	v.panBy(dx, dy)
	v.moveEnd()
}

// Resize changes the container size and fires moveend.
func (v *View) Resize(w, h int) {
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	v.moveEnd()
}

// zoomAround changes the zoom keeping the position under the container
// point p fixed.
func (v *View) zoomAround(p canvasmarkers.Point, zoom float64) {
	zoom = clamp(zoom, v.opts.MinZoom, v.opts.MaxZoom)
	if zoom == v.zoom {
		return
	}
	ll := v.ContainerPointToLatLng(p)
	world := project(ll, zoom)
	cx := world[0] - p.X + float64(v.width)/2
	cy := world[1] - p.Y + float64(v.height)/2
	center := unproject(orb.Point{cx, cy}, zoom)
	if v.opts.ZoomAnimation {
		v.FlyTo(center, zoom, defaultFlyDuration)
		return
	}
	v.SetView(center, zoom)
}

// panBy shifts the centre without firing events.
func (v *View) panBy(dx, dy float64) {
	c := project(v.center, v.zoom)
	v.center = unproject(orb.Point{c[0] + dx, c[1] + dy}, v.zoom)
}

func (v *View) moveEnd() {
	v.settle()
	v.fire(canvasmarkers.Event{Type: canvasmarkers.EventMoveEnd})
}

func (v *View) settle() {
	v.settledOrigin = v.pixelOrigin()
	v.settledZoom = v.zoom
}

// pixelOrigin returns the world pixel at the container's top-left corner.
func (v *View) pixelOrigin() orb.Point {
	c := project(v.center, v.zoom)
	return orb.Point{c[0] - float64(v.width)/2, c[1] - float64(v.height)/2}
}

func (v *View) fire(e canvasmarkers.Event) {
	v.handlers.fire(e)
}

// Interactive reports whether any attached surface has the pointer over a
// marker.
func (v *View) Interactive() bool {
	for _, p := range v.panes {
		for _, s := range p.children {
			if s.Interactive() {
				return true
			}
		}
	}
	return false
}

// --- Frame ---

// Update advances scripted input, animations and pointer input, then lets
// layers deliver finished glyph loads.
func (v *View) Update() {
	if v.script != nil {
		v.script.step(v)
	}
	v.updateFlight(float32(1.0 / float64(ebiten.TPS())))
	v.processInput()
	for _, l := range v.layers {
		if u, ok := l.(interface{ Update() }); ok {
			u.Update()
		}
	}
}

// Draw fills the background and composites every pane in order, then the
// open popup.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.opts.Background)

	// Surfaces hold content painted at the last moveend. While panning
	// they are shifted to follow the map.
	var dx, dy float64
	if v.zoom == v.settledZoom {
		o := v.pixelOrigin()
		dx = v.settledOrigin[0] - o[0]
		dy = v.settledOrigin[1] - o[1]
	}
	for _, name := range paneOrder {
		for _, s := range v.panes[name].children {
			img := s.Image()
			if img == nil {
				continue
			}
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(math.Round(dx), math.Round(dy))
			screen.DrawImage(img, &op)
		}
	}
	v.drawPopup(screen)
	v.flushScreenshots(screen)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// --- Panes ---

// pane is an ordered list of surfaces.
type pane struct {
	name     string
	children []*canvasmarkers.Surface
}

// AppendChild adds s as the last child. A surface already in the pane is
// moved to the end.
func (p *pane) AppendChild(s *canvasmarkers.Surface) {
	if i := slices.Index(p.children, s); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	p.children = append(p.children, s)
}

// RemoveChild removes s. Unknown surfaces are ignored.
func (p *pane) RemoveChild(s *canvasmarkers.Surface) {
	if i := slices.Index(p.children, s); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
}

// Children returns the surfaces in the named pane, in draw order.
func (v *View) Children(name string) []*canvasmarkers.Surface {
	p, ok := v.panes[name]
	if !ok {
		return nil
	}
	return p.children
}
