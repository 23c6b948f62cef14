// Package surface is the pixel canvas layers draw into: a rectangular
// RGBA buffer with region reads and writes, backed by a gg context for
// drawing and PNG output.
package surface

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"bendor/internal/selection"
)

// Surface is what the layer stack needs from a canvas.
//
// GetRegion returns w*h*4 RGBA bytes; pixels outside the surface read as
// transparent black. PutRegion writes such a buffer back, dropping pixels
// that fall outside.
type Surface interface {
	selection.Sampler
	GetRegion(x, y, w, h int) []uint8
	PutRegion(buf []uint8, x, y, w, h int)
}

// Image is a Surface over an *image.RGBA.
type Image struct {
	img *image.RGBA
	dc  *gg.Context
}

// New returns a transparent w x h surface.
func New(w, h int) *Image {
	return wrap(image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))))
}

// FromImage copies src into a new surface anchored at the origin.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	s := New(b.Dx(), b.Dy())
	xdraw.Draw(s.img, s.img.Bounds(), src, b.Min, xdraw.Src)
	return s
}

func wrap(img *image.RGBA) *Image {
	return &Image{img: img, dc: gg.NewContextForRGBA(img)}
}

func (s *Image) Width() int  { return s.img.Rect.Dx() }
func (s *Image) Height() int { return s.img.Rect.Dy() }

func (s *Image) ColorAt(x, y int) (selection.Color, bool) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return selection.Color{}, false
	}
	i := s.img.PixOffset(x, y)
	var c selection.Color
	copy(c[:], s.img.Pix[i:i+4])
	return c, true
}

func (s *Image) GetRegion(x, y, w, h int) []uint8 {
	if w <= 0 || h <= 0 {
		return []uint8{}
	}
	buf := make([]uint8, w*h*4)
	s.eachRow(x, y, w, h, buf, func(pix, region []uint8) {
		copy(region, pix)
	})
	return buf
}

func (s *Image) PutRegion(buf []uint8, x, y, w, h int) {
	if w <= 0 || h <= 0 || len(buf) < w*h*4 {
		return
	}
	s.eachRow(x, y, w, h, buf, func(pix, region []uint8) {
		copy(pix, region)
	})
}

// eachRow calls fn with the overlapping spans of the surface and of a
// w x h region buffer placed at (x, y), one row at a time.
func (s *Image) eachRow(x, y, w, h int, buf []uint8, fn func(pix, region []uint8)) {
	x0, x1 := max(x, 0), min(x+w, s.Width())
	if x0 >= x1 {
		return
	}
	for row := max(y, 0); row < min(y+h, s.Height()); row++ {
		p := s.img.PixOffset(x0, row)
		r := ((row-y)*w + (x0 - x)) * 4
		n := (x1 - x0) * 4
		fn(s.img.Pix[p:p+n], buf[r:r+n])
	}
}

// Snapshot returns an independent copy of the pixels.
func (s *Image) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// Context exposes the gg drawing context bound to the pixels.
func (s *Image) Context() *gg.Context { return s.dc }

// Clear makes every pixel transparent.
func (s *Image) Clear() {
	clear(s.img.Pix)
}

// DrawOutline strokes the closed path through points in the given hex
// colour. Fewer than two points draw single dots.
func (s *Image) DrawOutline(points []selection.Point, hex string) {
	if len(points) == 0 {
		return
	}
	s.dc.SetHexColor(hex)
	if len(points) == 1 {
		s.dc.SetPixel(points[0].X, points[0].Y)
		return
	}
	s.dc.SetLineWidth(1)
	s.dc.MoveTo(float64(points[0].X)+0.5, float64(points[0].Y)+0.5)
	for _, p := range points[1:] {
		s.dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	s.dc.ClosePath()
	s.dc.Stroke()
}

// Opaque reports whether the pixel at (x, y) has any coverage.
func (s *Image) Opaque(x, y int) bool {
	c, ok := s.ColorAt(x, y)
	return ok && c[3] > 0
}

func (s *Image) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Image) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
