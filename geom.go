package canvasmarkers

import "math"

// Point is a pixel-space coordinate or size. The origin is the top-left of
// the map container, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Round returns p with both components rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{math.Round(p.X), math.Round(p.Y)}
}

// Rect is an axis-aligned rectangle in container pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// centeredRect returns the rectangle of the given size centered on c.
func centeredRect(c, size Point) Rect {
	return Rect{
		X:      c.X - size.X/2,
		Y:      c.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	}
}
