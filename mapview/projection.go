package mapview

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// TileSize is the pixel size of one Web Mercator tile.
const TileSize = 256

// refZoom is the zoom at which maptile fractions are taken before scaling
// to the view's fractional zoom. High enough that the southern clamp in
// maptile.Fraction lands on the world's bottom edge.
const refZoom maptile.Zoom = 20

// worldSize returns the width of the whole world in pixels at zoom z.
func worldSize(z float64) float64 {
	return TileSize * math.Exp2(z)
}

// project converts a (longitude, latitude) position to world pixels at
// zoom z.
func project(ll orb.Point, z float64) orb.Point {
	f := maptile.Fraction(ll, refZoom)
	scale := worldSize(z) / math.Exp2(float64(refZoom))
	return orb.Point{f[0] * scale, f[1] * scale}
}

// unproject converts world pixels at zoom z back to (longitude, latitude).
func unproject(p orb.Point, z float64) orb.Point {
	size := worldSize(z)
	x := p[0] / size
	y := p[1] / size
	lng := x*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*y))) * 180 / math.Pi
	return orb.Point{lng, lat}
}
