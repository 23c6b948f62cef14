package filter

import (
	"math"

	"bendor/internal/selection"
)

const minShift = 10

// ApplyFractalPixelSort smears and channel-shuffles the whole region, then
// copies the result back only where the selection is.
//
// The smear is one backward pass where every byte may be replaced by the
// smaller byte found at (i*intensity) mod len. The shuffle moves R, G and
// B bytes between each pixel and the byte leftSide positions away, in a
// random direction, using one of three recipes picked by rightSide%3.
// Two recipes write only two channels; that is how the effect looks.
func ApplyFractalPixelSort(region []uint8, rect selection.Rect, points []selection.Point, cfg selection.Config, env Env) {
	c := config[selection.FractalPixelSortConfig](cfg, selection.FractalPixelSort)
	rng := env.rng()
	n := rect.Len()
	if n == 0 {
		return
	}

	tmp := make([]uint8, n)
	copy(tmp, region[:n])

	for i := n - 1; i > 0; i-- {
		j, ok := strideIndex(i, c.Intensity, n)
		if ok && tmp[j] < tmp[i] {
			tmp[i] = tmp[j]
		}
	}

	leftSide := minShift
	if rect.Width > leftSide {
		leftSide += rng.IntN(rect.Width - leftSide)
	}
	rightSide := leftSide
	if rect.Width > rightSide {
		rightSide += rng.IntN(rect.Width - rightSide)
	}
	recipe := rightSide % 3

	for y := 0; y < rect.Height; y++ {
		for x := 0; x < rect.Width; x++ {
			pos := (x + y*rect.Width) * 4
			r, g, b := tmp[pos], tmp[pos+1], tmp[pos+2]

			if rng.IntN(2) == 0 {
				if pos+leftSide+1 > n-1 {
					continue
				}
				switch recipe {
				case 0:
					tmp[pos] = b
					tmp[pos+leftSide] = r
					tmp[pos+leftSide+1] = g
				case 1:
					tmp[pos] = r
					tmp[pos+leftSide] = b
					tmp[pos+leftSide+1] = g
				default:
					tmp[pos] = r
					tmp[pos+leftSide] = b
				}
			} else {
				if pos-leftSide < 0 {
					continue
				}
				switch recipe {
				case 0:
					tmp[pos] = b
					tmp[pos-leftSide] = g
					tmp[pos-leftSide+1] = r
				case 1:
					tmp[pos+1] = b
					tmp[pos-leftSide] = b
				default:
					tmp[pos] = g
					tmp[pos-leftSide] = b
					tmp[pos-leftSide+1] = r
				}
			}
		}
	}

	for _, p := range points {
		if !rect.Contains(p.X, p.Y) {
			continue
		}
		i := rect.Index(p.X, p.Y)
		region[i] = tmp[i]
		region[i+1] = tmp[i+1]
		region[i+2] = tmp[i+2]
	}
}

// strideIndex returns (i*intensity) mod n when that product lands on a
// whole, non-negative byte index. Fractional strides address nothing.
func strideIndex(i int, intensity float64, n int) (int, bool) {
	v := float64(i) * intensity
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return int(math.Mod(v, float64(n))), true
}
