package selection

import "math"

// Color is one RGBA pixel.
type Color [4]uint8

// Point is a pixel coordinate. Data holds the colour sampled from the
// original image when Captured is set.
type Point struct {
	X, Y     int
	Data     Color
	Captured bool
}

// At returns a coordinate-only point.
func At(x, y int) Point {
	return Point{X: x, Y: y}
}

// WithColor returns a point carrying its captured colour.
func WithColor(x, y int, c Color) Point {
	return Point{X: x, Y: y, Data: c, Captured: true}
}

// Rect is the bounding box of a point set. Width and Height are inclusive
// pixel counts.
type Rect struct {
	Width, Height int
	MinX, MinY    int
}

// BoundingBox returns the smallest rectangle covering every point.
// ok is false for an empty slice.
func BoundingBox(points []Point) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}

	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Rect{
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
		MinX:   minX,
		MinY:   minY,
	}, true
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	lx, ly := x-r.MinX, y-r.MinY
	return lx >= 0 && lx < r.Width && ly >= 0 && ly < r.Height
}

// Index returns the offset of the R byte of (x, y) in an RGBA buffer laid
// out over the rectangle.
func (r Rect) Index(x, y int) int {
	return ((y-r.MinY)*r.Width + (x - r.MinX)) * 4
}

// Len is the byte length of an RGBA buffer covering the rectangle.
func (r Rect) Len() int {
	return r.Width * r.Height * 4
}
