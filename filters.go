package main

import (
	"fmt"
	"math"

	"bendor/internal/selection"
)

// configField is one adjustable value of a filter config as shown in the
// side panel.
type configField struct {
	name  string
	value string
}

func configFields(cfg selection.Config) []configField {
	switch c := cfg.(type) {
	case selection.AsSoundConfig:
		return []configField{{"blend", fmt.Sprintf("%.2f", c.Blend)}}
	case selection.FractalPixelSortConfig:
		return []configField{{"intensity", fmt.Sprintf("%.2f", c.Intensity)}}
	case selection.BrightnessConfig:
		return []configField{{"intensity", fmt.Sprintf("%.2f", c.Intensity)}}
	case selection.TintConfig:
		return []configField{
			{"r", fmt.Sprint(c.R)},
			{"g", fmt.Sprint(c.G)},
			{"b", fmt.Sprint(c.B)},
		}
	case selection.GrayscaleConfig:
		return []configField{{"intensity", fmt.Sprintf("%.2f", c.Intensity)}}
	default:
		return nil
	}
}

// adjustConfig nudges field of cfg by one step in dir (+1 or -1) and
// returns the new config. Values stay inside each filter's useful range.
func adjustConfig(cfg selection.Config, field, dir int) selection.Config {
	d := float64(dir)
	switch c := cfg.(type) {
	case selection.AsSoundConfig:
		c.Blend = clampStep(c.Blend+0.05*d, 0, 1)
		return c
	case selection.FractalPixelSortConfig:
		c.Intensity = clampStep(c.Intensity+0.5*d, 0, 64)
		return c
	case selection.BrightnessConfig:
		c.Intensity = clampStep(c.Intensity+0.1*d, 0, 4)
		return c
	case selection.TintConfig:
		ch := [3]*uint8{&c.R, &c.G, &c.B}
		if field >= 0 && field < len(ch) {
			*ch[field] = uint8(clampStep(float64(*ch[field])+5*d, 0, 255))
		}
		return c
	case selection.GrayscaleConfig:
		c.Intensity = clampStep(c.Intensity+0.05*d, 0, 1)
		return c
	default:
		return cfg
	}
}

// clampStep clamps v and rounds it to two decimals so repeated steps do
// not drift.
func clampStep(v, lo, hi float64) float64 {
	return math.Round(min(max(v, lo), hi)*100) / 100
}
