// Package sound turns pixel colours into audio and back into bytes.
//
// Each colour becomes three partials, one per channel, with the channel
// value choosing a frequency inside that channel's band and also acting
// as the amplitude. The partials are synthesised as sine waves, distorted,
// and written out as a 16-bit mono WAV stream whose raw bytes are what
// the AsSound filter paints back into the image.
package sound

import "math"

const (
	DefaultDuration   = 0.25 // seconds
	DefaultSampleRate = 22050
)

// Band is a frequency range in Hz.
type Band struct {
	Min, Max float64
}

// Map places a 0..1 value inside the band.
func (b Band) Map(v float64) float64 {
	return b.Min + v*(b.Max-b.Min)
}

// Bands holds one non-overlapping band per colour channel.
type Bands struct {
	R, G, B Band
}

// DefaultBands keeps red low, green in the middle and blue high.
var DefaultBands = Bands{
	R: Band{Min: 20, Max: 400},
	G: Band{Min: 400, Max: 2000},
	B: Band{Min: 2000, Max: 8000},
}

// Partial is one sine component.
type Partial struct {
	Frequency float64
	Amplitude float64
}

// MapColor turns a normalised RGB triple into three partials.
func (b Bands) MapColor(rgb [3]float64) [3]Partial {
	return [3]Partial{
		{Frequency: b.R.Map(rgb[0]), Amplitude: rgb[0]},
		{Frequency: b.G.Map(rgb[1]), Amplitude: rgb[1]},
		{Frequency: b.B.Map(rgb[2]), Amplitude: rgb[2]},
	}
}

// MaxChords bounds how many colours Synthesize mixes. Larger inputs are
// sampled evenly.
const MaxChords = 256

// Synthesize renders duration seconds of audio by additive synthesis:
// every sample is the amplitude-weighted sum of all partials, divided by
// their count so it stays within -1..1. It returns nil when there is
// nothing to play.
func Synthesize(chords [][3]Partial, duration float64, sampleRate int) []float64 {
	n := int(duration * float64(sampleRate))
	if len(chords) == 0 || n <= 0 {
		return nil
	}

	partials := make([]Partial, 0, 3*min(len(chords), MaxChords))
	for _, chord := range evenly(chords, MaxChords) {
		partials = append(partials, chord[:]...)
	}

	samples := make([]float64, n)
	step := 2 * math.Pi / float64(sampleRate)
	scale := 1 / float64(len(partials))
	for i := range samples {
		t := step * float64(i)
		var v float64
		for _, p := range partials {
			if p.Amplitude == 0 {
				continue
			}
			v += p.Amplitude * math.Sin(t*p.Frequency)
		}
		samples[i] = v * scale
	}
	return samples
}

// evenly returns at most limit chords spread across the whole input.
func evenly(chords [][3]Partial, limit int) [][3]Partial {
	if len(chords) <= limit {
		return chords
	}
	out := make([][3]Partial, limit)
	for i := range out {
		out[i] = chords[i*len(chords)/limit]
	}
	return out
}

// Tile repeats data until it fills n bytes.
func Tile(data []byte, n int) []byte {
	out := make([]byte, n)
	if len(data) == 0 {
		return out
	}
	for i := range out {
		out[i] = data[i%len(data)]
	}
	return out
}
