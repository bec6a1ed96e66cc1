// Package mapview is a minimal Web Mercator map viewport for Ebitengine
// that hosts canvasmarkers layers.
//
// A [View] implements [canvasmarkers.Map]: it projects (longitude,
// latitude) positions to container pixels using 256px tiles, owns the
// named panes surfaces are appended to, dispatches "moveend",
// "zoomstart", "mousemove" and "click" events, and draws popups. It does
// not draw map tiles.
//
// Pointer input comes from the mouse, or from the Inject* methods and
// [Script] for automated runs:
//
//	v := mapview.New(mapview.Options{Width: 800, Height: 600, Zoom: 3})
//	v.AddLayer(layer)
//	if err := mapview.Run(v, mapview.RunConfig{Title: "Markers"}); err != nil {
//		log.Fatal(err)
//	}
package mapview
