// markers10k scatters 10,000 pins over a world map drawn by a single
// canvas layer. Hovering a pin shows a pointer cursor; clicking one opens
// its popup. Drag to pan, scroll to zoom. A stress test for the
// canvasmarkers repaint and hit-testing paths.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/paulmach/orb"
	"github.com/phanxgames/canvasmarkers"
	"github.com/phanxgames/canvasmarkers/ecs"
	"github.com/phanxgames/canvasmarkers/glyph"
	"github.com/phanxgames/canvasmarkers/mapview"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const (
	pinW   = 18
	pinH   = 26
	pinSrc = "glyph:pin"
)

// demoLayer wraps the marker layer so ECS events are drained every tick.
type demoLayer struct {
	*canvasmarkers.CanvasIconLayer
	world donburi.World
}

func (l *demoLayer) Update() {
	l.CanvasIconLayer.Update()
	events.ProcessAllEvents(l.world)
}

func main() {
	count := flag.Int("n", 10_000, "number of random markers")
	width := flag.Int("w", 1280, "window width")
	height := flag.Int("h", 720, "window height")
	geojsonPath := flag.String("geojson", "", "load markers from a GeoJSON FeatureCollection instead of random points")
	iconURL := flag.String("icon", "", "fetch the marker icon from this URL or file instead of drawing one")
	scriptPath := flag.String("script", "", "run a JSON input script")
	debug := flag.Bool("debug", false, "log repaint stats")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvasmarkers.SetLogger(logger)

	icon := canvasmarkers.NewIcon(pinSrc, pinW, pinH)
	var loader canvasmarkers.ImageLoader
	if *iconURL != "" {
		icon.URL = *iconURL
		loader = canvasmarkers.NewAsyncLoader(canvasmarkers.LoaderOptions{})
	} else {
		static := canvasmarkers.NewStaticLoader()
		static.Add(pinSrc, glyph.Pin(pinW*2, pinH*2, color.RGBA{0xd6, 0x3a, 0x2f, 0xff}))
		loader = static
	}

	layer := canvasmarkers.NewCanvasIconLayer(canvasmarkers.LayerOptions{
		Pane:   mapview.MarkerPane,
		Icon:   icon,
		Loader: loader,
	})
	layer.SetDebugMode(*debug)

	world := donburi.NewWorld()
	ecs.NewClickBridge(world, layer)
	ecs.MarkerClickEventType.Subscribe(world, func(w donburi.World, e ecs.MarkerClickEvent) {
		ll := e.Marker.LatLng()
		logger.Info("marker clicked", "id", e.MarkerID, "lng", ll.Lon(), "lat", ll.Lat())
	})

	set := canvasmarkers.NewMarkerSet(layer, canvasmarkers.MarkerSetOptions{})

	var descs []canvasmarkers.MarkerDescriptor
	if *geojsonPath != "" {
		data, err := os.ReadFile(*geojsonPath)
		if err != nil {
			log.Fatalf("read geojson: %v", err)
		}
		descs, err = canvasmarkers.DescriptorsFromGeoJSON(data, icon)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		descs = randomDescriptors(*count, icon)
	}

	view := mapview.New(mapview.Options{
		Width:         *width,
		Height:        *height,
		Zoom:          2,
		ZoomAnimation: true,
	})
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		script, err := mapview.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		view.SetScript(script)
	}

	view.AddLayer(&demoLayer{CanvasIconLayer: layer, world: world})
	set.Sync(descs)
	logger.Info("markers loaded", "count", layer.Len())

	if err := mapview.Run(view, mapview.RunConfig{
		Title:     "canvasmarkers: 10k markers",
		ShowFPS:   true,
		Resizable: true,
	}); err != nil {
		log.Fatal(err)
	}
}

// randomDescriptors scatters n markers between 60S and 70N.
func randomDescriptors(n int, icon *canvasmarkers.Icon) []canvasmarkers.MarkerDescriptor {
	descs := make([]canvasmarkers.MarkerDescriptor, n)
	for i := range descs {
		ll := orb.Point{rand.Float64()*360 - 180, rand.Float64()*130 - 60}
		descs[i] = canvasmarkers.MarkerDescriptor{
			ID:       fmt.Sprintf("m%d", i),
			Position: ll,
			Icon:     icon,
			Popup:    fmt.Sprintf("marker %d\n%.3f, %.3f", i, ll.Lat(), ll.Lon()),
		}
	}
	return descs
}
