// Package canvasmarkers draws large numbers of map markers onto one shared
// [Ebitengine] surface instead of one visual element per marker.
//
// A [CanvasIconLayer] owns the surface and the marker registry. It attaches
// to any host that implements [Map] (package mapview provides a Web
// Mercator implementation), repaints on "moveend", blanks on "zoomstart",
// and recovers hover and click by hit-testing pointer events against each
// marker's glyph rectangle.
//
// # Quick start
//
//	layer := canvasmarkers.NewCanvasIconLayer(canvasmarkers.LayerOptions{
//		Icon: canvasmarkers.NewIcon("https://example.com/pin.png", 24, 36),
//	})
//	layer.AddMarker(canvasmarkers.NewMarker(orb.Point{2.35, 48.85}, nil))
//	layer.AddOnClickListener(func(e canvasmarkers.Event, m *canvasmarkers.Marker) {
//		log.Printf("clicked marker %d", m.ID)
//	})
//	view.AddLayer(layer)
//
// Adding or removing markers does not repaint; call [CanvasIconLayer.Redraw]
// or let [MarkerSet] do it when a declarative marker list changes.
//
// # Hit testing
//
// Hit testing is a linear scan in registration order. When glyphs
// overlap, the marker registered first wins. The hit rectangle is centred
// on the projected position and sized like the glyph, independent of the
// glyph's anchor.
//
// # Images
//
// Glyphs are loaded through an [ImageLoader]. Loads complete on the UI
// goroutine when the host calls [CanvasIconLayer.Update]. A glyph whose
// load finished is drawn at the position captured when the load started
// unless [LayerOptions].ReprojectOnLoad is set.
//
// [Ebitengine]: https://ebitengine.org
package canvasmarkers
