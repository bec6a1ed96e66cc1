package canvasmarkers

// Icon describes the glyph drawn for a marker.
type Icon struct {
	// URL is the image source handed to the ImageLoader. An empty URL never
	// loads, so the glyph never appears.
	URL string
	// Size is the display size in pixels. It also defines the hit rectangle.
	// A zero size draws nothing and is never hit.
	Size Point
	// Anchor is the offset from the glyph's top-left corner that is placed on
	// the marker's projected position.
	Anchor Point
}

// NewIcon returns an icon of the given size anchored at its bottom centre,
// the usual placement for map pins.
func NewIcon(url string, w, h float64) *Icon {
	return &Icon{
		URL:    url,
		Size:   Point{w, h},
		Anchor: Point{w / 2, h},
	}
}

// zeroIcon stands in when neither the marker nor the layer has an icon.
var zeroIcon = &Icon{}
