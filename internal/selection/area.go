package selection

import (
	"math"
	"slices"
)

// Sampler gives read access to image colours by coordinate.
type Sampler interface {
	Width() int
	Height() int
	ColorAt(x, y int) (Color, bool)
}

// CaptureBaseline returns one captured point per pixel of src, row by row.
func CaptureBaseline(src Sampler) []Point {
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return []Point{}
	}
	points := make([]Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := src.ColorAt(x, y)
			points = append(points, WithColor(x, y, c))
		}
	}
	return points
}

// Sample annotates each point with the colour src holds at its position.
// Points outside src are dropped.
func Sample(points []Point, src Sampler) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		c, ok := src.ColorAt(p.X, p.Y)
		if !ok {
			continue
		}
		out = append(out, WithColor(p.X, p.Y, c))
	}
	return out
}

// FillPolygon returns every pixel covered by the closed polygon traced by
// path, outline included, clipped to a width x height image. Pixels come
// back in row-major order without colour.
func FillPolygon(path []Point, width, height int) []Point {
	if len(path) == 0 || width <= 0 || height <= 0 {
		return []Point{}
	}
	box, _ := BoundingBox(path)
	mask := make([]bool, box.Width*box.Height)
	set := func(x, y int) {
		if box.Contains(x, y) {
			mask[(y-box.MinY)*box.Width+(x-box.MinX)] = true
		}
	}

	// outline
	for i := range path {
		a := path[i]
		b := path[(i+1)%len(path)]
		line(a.X, a.Y, b.X, b.Y, set)
	}

	// even-odd interior, sampled at pixel centres
	if len(path) >= 3 {
		xs := make([]float64, 0, len(path))
		for y := box.MinY; y < box.MinY+box.Height; y++ {
			cy := float64(y) + 0.5
			xs = xs[:0]
			for i := range path {
				a := path[i]
				b := path[(i+1)%len(path)]
				ay, by := float64(a.Y), float64(b.Y)
				if (ay <= cy && by > cy) || (by <= cy && ay > cy) {
					t := (cy - ay) / (by - ay)
					xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
				}
			}
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				from := int(math.Ceil(xs[i] - 0.5))
				to := int(math.Floor(xs[i+1] - 0.5))
				for x := from; x <= to; x++ {
					set(x, y)
				}
			}
		}
	}

	out := make([]Point, 0, len(mask))
	for y := box.MinY; y < box.MinY+box.Height; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := box.MinX; x < box.MinX+box.Width; x++ {
			if x < 0 || x >= width {
				continue
			}
			if mask[(y-box.MinY)*box.Width+(x-box.MinX)] {
				out = append(out, At(x, y))
			}
		}
	}
	return out
}

// line walks the Bresenham line from (x0, y0) to (x1, y1).
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
