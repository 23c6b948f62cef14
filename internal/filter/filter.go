// Package filter holds the pixel filters a layer can apply.
//
// Every filter works on region, the RGBA bytes of rect as read from the
// canvas, and touches only the bytes addressed by points. Filters never
// fail: bad input degrades to leaving the region as it was.
package filter

import (
	"math/rand/v2"

	"bendor/internal/selection"
	"bendor/internal/sound"
)

// Env carries what filters need beyond their config.
type Env struct {
	// Rand drives the randomised filters. Nil means an unseeded source.
	Rand  *rand.Rand
	Sound sound.Options
}

// DefaultEnv returns an unseeded environment with default sound options.
func DefaultEnv() Env {
	return Env{Sound: sound.DefaultOptions()}
}

func (e Env) rng() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Func mutates region in place.
type Func func(region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, env Env)

var registry = map[selection.Kind]Func{
	selection.None:             func([]uint8, selection.Rect, []selection.Point, selection.Config, Env) {},
	selection.AsSound:          ApplyAsSound,
	selection.FractalPixelSort: ApplyFractalPixelSort,
	selection.Brightness:       ApplyBrightness,
	selection.Tint:             ApplyTint,
	selection.Grayscale:        ApplyGrayscale,
}

// Lookup returns the filter for a kind.
func Lookup(k selection.Kind) (Func, bool) {
	f, ok := registry[k]
	return f, ok
}

// Apply runs the filter matching kind. Unknown kinds do nothing.
func Apply(k selection.Kind, region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, env Env) {
	f, ok := Lookup(k)
	if !ok || len(region) < rect.Len() {
		return
	}
	if cfg == nil || cfg.Kind() != k {
		cfg = selection.DefaultConfig(k)
	}
	f(region, rect, points, cfg, env)
}

// config returns cfg as a T, or the kind's default when it is not one.
func config[T selection.Config](cfg selection.Config, k selection.Kind) T {
	if c, ok := cfg.(T); ok {
		return c
	}
	return selection.DefaultConfig(k).(T)
}
