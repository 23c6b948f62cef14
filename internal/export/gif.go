package export

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"slices"

	xdraw "golang.org/x/image/draw"
)

// GIFOptions mirrors the knobs of the GIF export dialog.
type GIFOptions struct {
	Framerate          int // frames per second, 5..30
	ColorRange         int // palette size before compression, 80..256
	CompressionQuality int // 0..100, higher drops more colours
	MaxWidth           int // frames wider than this are scaled down; 0 keeps size
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		Framerate:          15,
		ColorRange:         80,
		CompressionQuality: 0,
	}
}

func (o GIFOptions) Validate() error {
	switch {
	case o.Framerate < 5 || o.Framerate > 30:
		return fmt.Errorf("framerate %d out of range 5..30", o.Framerate)
	case o.ColorRange < 80 || o.ColorRange > 256:
		return fmt.Errorf("color range %d out of range 80..256", o.ColorRange)
	case o.CompressionQuality < 0 || o.CompressionQuality > 100:
		return fmt.Errorf("compression quality %d out of range 0..100", o.CompressionQuality)
	case o.MaxWidth < 0:
		return fmt.Errorf("max width %d is negative", o.MaxWidth)
	}
	return nil
}

// PaletteSize is the number of colours left after compression: full
// quality keeps ColorRange, 100 keeps half of it.
func (o GIFOptions) PaletteSize() int {
	return max(2, o.ColorRange-o.ColorRange*o.CompressionQuality/200)
}

// Delay is the per-frame delay in hundredths of a second.
func (o GIFOptions) Delay() int {
	return max(1, 100/o.Framerate)
}

// Encoder writes frames as one animated image.
type Encoder interface {
	Encode(w io.Writer, frames []*image.RGBA, opts GIFOptions) error
}

// GIFEncoder quantises all frames to one shared palette chosen by colour
// popularity and dithers each frame onto it.
type GIFEncoder struct{}

func (GIFEncoder) Encode(w io.Writer, frames []*image.RGBA, opts GIFOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}

	scaled := make([]*image.RGBA, len(frames))
	for i, f := range frames {
		scaled[i] = scale(f, opts.MaxWidth)
	}
	pal := popularPalette(scaled, opts.PaletteSize())

	anim := &gif.GIF{LoopCount: 0}
	for _, f := range scaled {
		p := image.NewPaletted(f.Bounds(), pal)
		draw.FloydSteinberg.Draw(p, f.Bounds(), f, f.Bounds().Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, opts.Delay())
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

func scale(img *image.RGBA, maxWidth int) *image.RGBA {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := max(1, b.Dy()*maxWidth/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

type bucket struct {
	count   int
	r, g, b int
}

// popularPalette buckets colours at 5 bits per channel and returns the
// average colour of the n most used buckets.
func popularPalette(frames []*image.RGBA, n int) color.Palette {
	buckets := map[uint16]*bucket{}
	for _, f := range frames {
		for i := 0; i+3 < len(f.Pix); i += 4 {
			r, g, b := int(f.Pix[i]), int(f.Pix[i+1]), int(f.Pix[i+2])
			key := uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.r += r
			bk.g += g
			bk.b += b
		}
	}

	keys := make([]uint16, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b uint16) int {
		if c := cmp.Compare(buckets[b].count, buckets[a].count); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if len(keys) > n {
		keys = keys[:n]
	}

	pal := make(color.Palette, 0, max(len(keys), 1))
	for _, k := range keys {
		bk := buckets[k]
		pal = append(pal, color.RGBA{
			R: uint8(bk.r / bk.count),
			G: uint8(bk.g / bk.count),
			B: uint8(bk.b / bk.count),
			A: 255,
		})
	}
	if len(pal) == 0 {
		pal = append(pal, color.Black)
	}
	return pal
}
