package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gridSampler struct {
	w, h int
}

func (g gridSampler) Width() int  { return g.w }
func (g gridSampler) Height() int { return g.h }
func (g gridSampler) ColorAt(x, y int) (Color, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return Color{}, false
	}
	return Color{uint8(x), uint8(y), uint8(x + y), 255}, true
}

func TestBoundingBox(t *testing.T) {
	r, ok := BoundingBox([]Point{At(2, 3), At(5, 3), At(2, 7)})
	require.True(t, ok)
	assert.Equal(t, Rect{Width: 4, Height: 5, MinX: 2, MinY: 3}, r)

	r, ok = BoundingBox([]Point{At(4, 4)})
	require.True(t, ok)
	assert.Equal(t, Rect{Width: 1, Height: 1, MinX: 4, MinY: 4}, r)

	_, ok = BoundingBox(nil)
	assert.False(t, ok)
}

func TestRectIndex(t *testing.T) {
	r := Rect{Width: 4, Height: 5, MinX: 2, MinY: 3}
	assert.Equal(t, 0, r.Index(2, 3))
	assert.Equal(t, 4, r.Index(3, 3))
	assert.Equal(t, 16, r.Index(2, 4))
	assert.Equal(t, 80, r.Len())
	assert.True(t, r.Contains(5, 7))
	assert.False(t, r.Contains(6, 7))
	assert.False(t, r.Contains(1, 3))
}

func TestSetFilterResetsConfig(t *testing.T) {
	for _, from := range Kinds() {
		for _, to := range Kinds() {
			if from == to {
				continue
			}
			s := New()
			s.SetFilter(from)
			switch from {
			case Brightness:
				require.True(t, s.SetConfig(BrightnessConfig{Intensity: 3}))
			case Tint:
				require.True(t, s.SetConfig(TintConfig{R: 1, G: 2, B: 3}))
			case AsSound:
				require.True(t, s.SetConfig(AsSoundConfig{Blend: 0.9}))
			}
			s.SetFilter(to)
			assert.Equal(t, to, s.Filter)
			assert.Equal(t, DefaultConfig(to), s.Config, "%s -> %s", from, to)
		}
	}
}

func TestSetFilterSameKindKeepsConfig(t *testing.T) {
	s := New()
	s.SetFilter(Grayscale)
	require.True(t, s.SetConfig(GrayscaleConfig{Intensity: 0.25}))
	s.SetFilter(Grayscale)
	assert.Equal(t, GrayscaleConfig{Intensity: 0.25}, s.Config)
}

func TestSetConfigRejectsMismatchedKind(t *testing.T) {
	s := New()
	s.SetFilter(Brightness)
	assert.False(t, s.SetConfig(GrayscaleConfig{Intensity: 0.5}))
	assert.False(t, s.SetConfig(nil))
	assert.Equal(t, BrightnessConfig{Intensity: 1.0}, s.Config)
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, NoneConfig{}, DefaultConfig(None))
	assert.Equal(t, AsSoundConfig{Blend: 0.50}, DefaultConfig(AsSound))
	assert.Equal(t, FractalPixelSortConfig{Intensity: 6.0}, DefaultConfig(FractalPixelSort))
	assert.Equal(t, BrightnessConfig{Intensity: 1.0}, DefaultConfig(Brightness))
	assert.Equal(t, TintConfig{R: 255, G: 255, B: 255}, DefaultConfig(Tint))
	assert.Equal(t, GrayscaleConfig{Intensity: 1.0}, DefaultConfig(Grayscale))
	for _, k := range Kinds() {
		assert.Equal(t, k, DefaultConfig(k).Kind())
	}
}

func TestKindCycling(t *testing.T) {
	k := None
	for range Kinds() {
		k = k.Next()
	}
	assert.Equal(t, None, k)
	assert.Equal(t, Grayscale, None.Prev())
	assert.Equal(t, "Fractal Pixel Sort", FractalPixelSort.String())
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Area = []Point{WithColor(1, 1, Color{1, 2, 3, 4})}
	s.Points = []Point{At(1, 1)}

	c := s.Clone()
	c.Area[0].Data[0] = 99
	c.Points[0].X = 7

	assert.Equal(t, uint8(1), s.Area[0].Data[0])
	assert.Equal(t, 1, s.Points[0].X)
}

func TestWorkingFallsBackToBaseline(t *testing.T) {
	baseline := []Point{WithColor(0, 0, Color{})}

	s := New()
	assert.Equal(t, baseline, s.Working(baseline))

	s.Area = []Point{At(3, 3)}
	assert.Equal(t, baseline, s.Working(baseline))

	s.Area = []Point{At(3, 3), WithColor(4, 4, Color{9, 9, 9, 9})}
	assert.Equal(t, []Point{WithColor(4, 4, Color{9, 9, 9, 9})}, s.Working(baseline))
}

func TestCaptureBaseline(t *testing.T) {
	points := CaptureBaseline(gridSampler{w: 3, h: 2})
	require.Len(t, points, 6)
	assert.Equal(t, WithColor(0, 0, Color{0, 0, 0, 255}), points[0])
	assert.Equal(t, WithColor(2, 1, Color{2, 1, 3, 255}), points[5])
	assert.Empty(t, CaptureBaseline(gridSampler{}))
}

func TestSampleDropsOutOfBounds(t *testing.T) {
	got := Sample([]Point{At(1, 1), At(-1, 0), At(5, 5)}, gridSampler{w: 3, h: 3})
	assert.Equal(t, []Point{WithColor(1, 1, Color{1, 1, 2, 255})}, got)
}

func TestFillPolygon(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		got := FillPolygon([]Point{At(0, 0), At(3, 0), At(3, 3), At(0, 3)}, 10, 10)
		assert.Len(t, got, 16)
		assert.Equal(t, At(0, 0), got[0])
		assert.Equal(t, At(3, 3), got[15])
	})

	t.Run("triangle interior", func(t *testing.T) {
		got := FillPolygon([]Point{At(0, 0), At(8, 0), At(0, 8)}, 20, 20)
		assert.Contains(t, got, At(2, 2))
		assert.NotContains(t, got, At(7, 7))
	})

	t.Run("clipped", func(t *testing.T) {
		got := FillPolygon([]Point{At(-2, -2), At(1, -2), At(1, 1), At(-2, 1)}, 5, 5)
		assert.ElementsMatch(t, []Point{At(0, 0), At(1, 0), At(0, 1), At(1, 1)}, got)
	})

	t.Run("single point and line", func(t *testing.T) {
		assert.Equal(t, []Point{At(2, 2)}, FillPolygon([]Point{At(2, 2)}, 5, 5))
		assert.Len(t, FillPolygon([]Point{At(0, 0), At(4, 0)}, 5, 5), 5)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, FillPolygon(nil, 5, 5))
	})
}
