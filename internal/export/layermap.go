package export

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"bendor/internal/selection"
	"bendor/internal/stack"
	"bendor/internal/surface"
)

// LayerMap draws base dimmed, with every layer's area tinted in the
// layer's colour and labelled with its index and filter.
func LayerMap(base image.Image, layers []stack.Layer) (*surface.Image, error) {
	out := surface.FromImage(base)
	dc := out.Context()
	w, h := float64(out.Width()), float64(out.Height())

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for i, l := range layers {
		area := l.Selection.Area
		rect, ok := selection.BoundingBox(area)
		if !ok {
			rect = selection.Rect{Width: out.Width(), Height: out.Height()}
		}

		c, err := colorful.Hex(l.Color)
		if err != nil {
			c = colorful.Color{R: 1, G: 1, B: 1}
		}
		dc.SetRGBA(c.R, c.G, c.B, 0.45)
		for _, p := range area {
			dc.DrawRectangle(float64(p.X), float64(p.Y), 1, 1)
		}
		dc.Fill()

		dc.SetRGB(c.R, c.G, c.B)
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(rect.MinX)+0.5, float64(rect.MinY)+0.5, float64(rect.Width-1), float64(rect.Height-1))
		dc.Stroke()

		label := fmt.Sprintf("%d %s", i, l.Selection.Filter)
		dc.DrawStringAnchored(label, float64(rect.MinX)+2, float64(rect.MinY)+2, 0, 1)
	}
	return out, nil
}
