package sound

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	pcmFormat = 1
	maxInt16  = 32767
)

// HeaderSize is the length of the RIFF/fmt/data header of a plain PCM WAV.
const HeaderSize = 44

// EncodeWAV writes samples as 16-bit mono PCM WAV and returns the bytes.
func EncodeWAV(samples []float64, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errors.New("no samples to encode")
	}

	ws := &writeSeeker{}
	enc := wav.NewEncoder(ws, sampleRate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(s * maxInt16)
	}

	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("write wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finish wav: %w", err)
	}
	return ws.buf, nil
}

// Options configures Waveform.
type Options struct {
	Duration   float64
	SampleRate int
	Bands      Bands
	Distortion Distortion
}

func DefaultOptions() Options {
	return Options{
		Duration:   DefaultDuration,
		SampleRate: DefaultSampleRate,
		Bands:      DefaultBands,
		Distortion: DefaultDistortion,
	}
}

// Waveform runs the whole colour to WAV pipeline. It returns nil bytes and
// no error when colors is empty.
func Waveform(colors [][3]float64, opts Options) ([]byte, error) {
	if len(colors) == 0 {
		return nil, nil
	}
	chords := make([][3]Partial, len(colors))
	for i, rgb := range colors {
		chords[i] = opts.Bands.MapColor(rgb)
	}
	samples := Synthesize(chords, opts.Duration, opts.SampleRate)
	if samples == nil {
		return nil, nil
	}
	return EncodeWAV(opts.Distortion.Apply(samples), opts.SampleRate)
}

// writeSeeker is an in-memory io.WriteSeeker; the wav encoder seeks back
// to patch chunk sizes when it closes.
type writeSeeker struct {
	buf []byte
	pos int
}

func (w *writeSeeker) Write(p []byte) (int, error) {
	end := w.pos + len(p)
	if end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	copy(w.buf[w.pos:], p)
	w.pos = end
	return len(p), nil
}

func (w *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(w.pos) + offset
	case io.SeekEnd:
		abs = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	w.pos = int(abs)
	return abs, nil
}
