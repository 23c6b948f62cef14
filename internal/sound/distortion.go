package sound

import "math"

// Distortion is a crude overdrive chain: gain, hard clip, bit crush and
// sample-and-hold. Zero fields disable their stage.
type Distortion struct {
	Drive float64 // gain before clipping
	Clip  float64 // clip threshold, 0..1
	Bits  int     // quantisation depth
	Hold  int     // repeat every sample this many times
}

// DefaultDistortion is what the AsSound filter uses.
var DefaultDistortion = Distortion{Drive: 4, Clip: 0.6, Bits: 4, Hold: 3}

// Apply returns a distorted copy of samples. Output stays within -1..1.
func (d Distortion) Apply(samples []float64) []float64 {
	out := make([]float64, len(samples))
	levels := 0.0
	if d.Bits > 0 {
		levels = math.Exp2(float64(d.Bits - 1))
	}

	var held float64
	for i, s := range samples {
		v := s
		if d.Drive > 0 {
			v *= d.Drive
		}
		if d.Clip > 0 {
			v = math.Max(-d.Clip, math.Min(d.Clip, v))
		}
		if levels > 0 {
			v = math.Round(v*levels) / levels
		}
		if d.Hold > 1 {
			if i%d.Hold == 0 {
				held = v
			} else {
				v = held
			}
		}
		out[i] = math.Max(-1, math.Min(1, v))
	}
	return out
}
