package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bendor/internal/selection"
)

func TestConfigFields(t *testing.T) {
	assert.Empty(t, configFields(selection.NoneConfig{}))
	assert.Equal(t, []configField{{"blend", "0.50"}}, configFields(selection.AsSoundConfig{Blend: 0.5}))
	assert.Len(t, configFields(selection.TintConfig{R: 1, G: 2, B: 3}), 3)
	assert.Equal(t, "2", configFields(selection.TintConfig{R: 1, G: 2, B: 3})[1].value)
}

func TestAdjustConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   selection.Config
		field int
		dir   int
		want  selection.Config
	}{
		{"blend up", selection.AsSoundConfig{Blend: 0.5}, 0, 1, selection.AsSoundConfig{Blend: 0.55}},
		{"blend capped", selection.AsSoundConfig{Blend: 1}, 0, 1, selection.AsSoundConfig{Blend: 1}},
		{"fractal down", selection.FractalPixelSortConfig{Intensity: 6}, 0, -1, selection.FractalPixelSortConfig{Intensity: 5.5}},
		{"fractal floor", selection.FractalPixelSortConfig{Intensity: 0}, 0, -1, selection.FractalPixelSortConfig{Intensity: 0}},
		{"brightness up", selection.BrightnessConfig{Intensity: 1}, 0, 1, selection.BrightnessConfig{Intensity: 1.1}},
		{"tint green down", selection.TintConfig{R: 255, G: 255, B: 255}, 1, -1, selection.TintConfig{R: 255, G: 250, B: 255}},
		{"tint capped", selection.TintConfig{R: 253}, 0, 1, selection.TintConfig{R: 255}},
		{"tint bad field", selection.TintConfig{R: 9}, 5, 1, selection.TintConfig{R: 9}},
		{"grayscale floor", selection.GrayscaleConfig{Intensity: 0.02}, 0, -1, selection.GrayscaleConfig{Intensity: 0}},
		{"none", selection.NoneConfig{}, 0, 1, selection.NoneConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adjustConfig(tt.cfg, tt.field, tt.dir))
		})
	}
}

func TestAdjustConfigDoesNotDrift(t *testing.T) {
	var cfg selection.Config = selection.GrayscaleConfig{Intensity: 0}
	for i := 0; i < 20; i++ {
		cfg = adjustConfig(cfg, 0, 1)
	}
	assert.Equal(t, selection.GrayscaleConfig{Intensity: 1}, cfg)
}
