package filter

import (
	"bendor/internal/pixel"
	"bendor/internal/selection"
)

// ApplyBrightness scales each point's captured colour by the intensity.
func ApplyBrightness(region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, _ Env) {
	c := config[selection.BrightnessConfig](cfg, selection.Brightness)
	for _, p := range points {
		if !p.Captured || !rect.Contains(p.X, p.Y) {
			continue
		}
		pixel.WriteRGB(region, rect.Index(p.X, p.Y), pixel.Brightness(p.Data, c.Intensity))
	}
}

// ApplyGrayscale moves each point's captured colour towards its average.
func ApplyGrayscale(region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, _ Env) {
	c := config[selection.GrayscaleConfig](cfg, selection.Grayscale)
	for _, p := range points {
		if !p.Captured || !rect.Contains(p.X, p.Y) {
			continue
		}
		i := rect.Index(p.X, p.Y)
		out := pixel.Grayscale(p.Data, c.Intensity)
		pixel.WriteRGB(region, i, out)
		region[i+3] = out[3]
	}
}

// ApplyTint is a recognised filter without a pixel effect yet.
func ApplyTint([]uint8, selection.Rect, []selection.Point, selection.Config, Env) {}
