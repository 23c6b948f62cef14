package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bendor/internal/selection"
	"bendor/internal/stack"
	"bendor/internal/surface"
)

// countingRenderer fills the canvas with the number of renders so far.
type countingRenderer struct {
	renders int
	img     *image.RGBA
}

func newCounting() *countingRenderer {
	return &countingRenderer{img: image.NewRGBA(image.Rect(0, 0, 2, 2))}
}

func (c *countingRenderer) Render() {
	c.renders++
	for i := range c.img.Pix {
		c.img.Pix[i] = uint8(c.renders)
	}
}

func (c *countingRenderer) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

func TestCaptureFramesOrder(t *testing.T) {
	r := newCounting()
	frames, err := CaptureFrames(context.Background(), r, 4)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	assert.Equal(t, 3, r.renders)
	for i, f := range frames {
		assert.Equal(t, uint8(i), f.Pix[0], "frame %d", i)
	}
}

func TestCaptureFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CaptureFrames(ctx, newCounting(), 3)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = CaptureFrames(context.Background(), newCounting(), 0)
	assert.Error(t, err)
}

func TestCaptureFramesWithoutCanvas(t *testing.T) {
	_, err := CaptureFrames(context.Background(), StackRenderer{Stack: stack.New()}, 2)
	assert.ErrorIs(t, err, ErrNoCanvas)
}

func TestStackRenderer(t *testing.T) {
	s := stack.New()
	s.Load(surface.New(3, 2))
	frames, err := CaptureFrames(context.Background(), StackRenderer{Stack: s}, 2)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, image.Rect(0, 0, 3, 2), frames[1].Bounds())
}

func TestGIFOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultGIFOptions().Validate())

	bad := []GIFOptions{
		{Framerate: 4, ColorRange: 80},
		{Framerate: 31, ColorRange: 80},
		{Framerate: 15, ColorRange: 79},
		{Framerate: 15, ColorRange: 257},
		{Framerate: 15, ColorRange: 80, CompressionQuality: -1},
		{Framerate: 15, ColorRange: 80, CompressionQuality: 101},
		{Framerate: 15, ColorRange: 80, MaxWidth: -1},
	}
	for _, o := range bad {
		assert.Error(t, o.Validate(), "%+v", o)
	}
}

func TestPaletteSizeAndDelay(t *testing.T) {
	o := DefaultGIFOptions()
	assert.Equal(t, 80, o.PaletteSize())
	assert.Equal(t, 6, o.Delay())

	o.CompressionQuality = 100
	assert.Equal(t, 40, o.PaletteSize())
	o.ColorRange, o.CompressionQuality = 256, 50
	assert.Equal(t, 192, o.PaletteSize())
	o.Framerate = 30
	assert.Equal(t, 3, o.Delay())
}

func noise(w, h int, seed uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x*37) + seed, uint8(y*53) + seed, uint8(x*y) + seed, 255})
		}
	}
	return img
}

func TestGIFEncoder(t *testing.T) {
	frames := []*image.RGBA{noise(16, 8, 0), noise(16, 8, 40), noise(16, 8, 80)}
	opts := DefaultGIFOptions()
	opts.CompressionQuality = 100

	var buf bytes.Buffer
	require.NoError(t, GIFEncoder{}.Encode(&buf, frames, opts))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{6, 6, 6}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)
	for _, p := range g.Image {
		used := map[uint8]bool{}
		for _, idx := range p.Pix {
			used[idx] = true
		}
		// the stored colour table is padded to a power of two
		assert.LessOrEqual(t, len(used), 40)
		assert.Equal(t, image.Rect(0, 0, 16, 8), p.Bounds())
	}
}

func TestGIFEncoderScales(t *testing.T) {
	opts := DefaultGIFOptions()
	opts.MaxWidth = 8

	var buf bytes.Buffer
	require.NoError(t, GIFEncoder{}.Encode(&buf, []*image.RGBA{noise(16, 8, 0)}, opts))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), g.Image[0].Bounds())
}

func TestGIFEncoderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, GIFEncoder{}.Encode(&buf, nil, DefaultGIFOptions()))
	assert.Error(t, GIFEncoder{}.Encode(&buf, []*image.RGBA{noise(2, 2, 0)}, GIFOptions{}))
}

func TestPopularPalette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x, c := range []color.RGBA{{255, 0, 0, 255}, {255, 0, 0, 255}, {255, 0, 0, 255}, {0, 0, 255, 255}} {
		img.SetRGBA(x, 0, c)
	}
	pal := popularPalette([]*image.RGBA{img}, 1)
	assert.Equal(t, color.Palette{color.RGBA{255, 0, 0, 255}}, pal)

	pal = popularPalette([]*image.RGBA{img}, 8)
	assert.Len(t, pal, 2)
}

func TestFilename(t *testing.T) {
	a := Filename([]byte("frame"))
	assert.Len(t, a, 12)
	assert.Regexp(t, `^[0-9a-f]{12}$`, a)
	assert.Equal(t, a, Filename([]byte("frame")))
	assert.NotEqual(t, a, Filename([]byte("frames")))
}

func TestWritePNGAndGIF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	img := surface.FromImage(noise(4, 4, 0))

	path, err := WritePNG(dir, img)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Filename(data)+".png"), path)

	path, err = WriteGIF(dir, GIFEncoder{}, []*image.RGBA{noise(4, 4, 0)}, DefaultGIFOptions())
	require.NoError(t, err)
	assert.Equal(t, ".gif", filepath.Ext(path))
	assert.FileExists(t, path)

	_, err = WriteGIF(dir, GIFEncoder{}, nil, DefaultGIFOptions())
	assert.Error(t, err)
}

func TestLayerMap(t *testing.T) {
	base := noise(40, 30, 0)
	s := stack.New(stack.WithColorFunc(func() string { return "#ff00ff" }))
	s.Load(surface.FromImage(base))
	i := s.CreateLayer()
	area := s.Sample([]selection.Point{selection.At(5, 5), selection.At(6, 5), selection.At(5, 6)})
	s.UpdateSelection(i, stack.Patch{Area: area}, false)
	s.CreateLayer()

	m, err := LayerMap(base, s.Layers())
	require.NoError(t, err)
	assert.Equal(t, 40, m.Width())
	assert.Equal(t, 30, m.Height())
	assert.NotEqual(t, base.Pix, m.Snapshot().Pix)

	var buf bytes.Buffer
	assert.NoError(t, m.EncodePNG(&buf))
}
