package filter

import (
	"bendor/internal/logging"
	"bendor/internal/pixel"
	"bendor/internal/selection"
	"bendor/internal/sound"
)

// ApplyAsSound reads the selected pixels as audio, distorts it, and blends
// the encoded WAV bytes back over the region. Blend 0 leaves the region
// untouched; blend 1 replaces R, G and B with the tiled WAV bytes.
func ApplyAsSound(region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, env Env) {
	c := config[selection.AsSoundConfig](cfg, selection.AsSound)

	colors := make([][3]float64, 0, len(points))
	for _, p := range points {
		if !p.Captured || !rect.Contains(p.X, p.Y) {
			continue
		}
		colors = append(colors, pixel.Normalize(pixel.Read(region, rect.Index(p.X, p.Y))))
	}

	opts := env.Sound
	if opts.SampleRate == 0 {
		opts = sound.DefaultOptions()
	}
	wav, err := sound.Waveform(colors, opts)
	if err != nil {
		logging.Logger().Warn("as sound: waveform", "err", err)
		return
	}
	if len(wav) == 0 {
		return
	}

	glitched := sound.Tile(wav, rect.Len())
	for _, p := range points {
		if !p.Captured || !rect.Contains(p.X, p.Y) {
			continue
		}
		i := rect.Index(p.X, p.Y)
		region[i] = pixel.Blend(region[i], glitched[i], c.Blend)
		region[i+1] = pixel.Blend(region[i+1], glitched[i+1], c.Blend)
		region[i+2] = pixel.Blend(region[i+2], glitched[i+2], c.Blend)
	}
}
