package selection

// Kind identifies the filter a selection applies.
type Kind int

const (
	None Kind = iota
	AsSound
	FractalPixelSort
	Brightness
	Tint
	Grayscale
)

var kindNames = map[Kind]string{
	None:             "None",
	AsSound:          "As Sound",
	FractalPixelSort: "Fractal Pixel Sort",
	Brightness:       "Brightness",
	Tint:             "Tint",
	Grayscale:        "Grayscale",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Kinds lists every filter in menu order.
func Kinds() []Kind {
	return []Kind{None, AsSound, FractalPixelSort, Brightness, Tint, Grayscale}
}

// Next returns the following kind in menu order, wrapping around.
func (k Kind) Next() Kind {
	kinds := Kinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return None
}

// Prev returns the preceding kind in menu order, wrapping around.
func (k Kind) Prev() Kind {
	kinds := Kinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+len(kinds)-1)%len(kinds)]
		}
	}
	return None
}

// Config is the per-filter configuration. Each filter kind has exactly one
// variant; a selection's config always matches its filter.
type Config interface {
	Kind() Kind
	isConfig()
}

type NoneConfig struct{}

type AsSoundConfig struct {
	Blend float64 // 0..1
}

type FractalPixelSortConfig struct {
	Intensity float64
}

type BrightnessConfig struct {
	Intensity float64
}

type TintConfig struct {
	R, G, B uint8
}

type GrayscaleConfig struct {
	Intensity float64 // 0..1
}

func (NoneConfig) Kind() Kind             { return None }
func (AsSoundConfig) Kind() Kind          { return AsSound }
func (FractalPixelSortConfig) Kind() Kind { return FractalPixelSort }
func (BrightnessConfig) Kind() Kind       { return Brightness }
func (TintConfig) Kind() Kind             { return Tint }
func (GrayscaleConfig) Kind() Kind        { return Grayscale }

func (NoneConfig) isConfig()             {}
func (AsSoundConfig) isConfig()          {}
func (FractalPixelSortConfig) isConfig() {}
func (BrightnessConfig) isConfig()       {}
func (TintConfig) isConfig()             {}
func (GrayscaleConfig) isConfig()        {}

// DefaultConfig returns the configuration a filter starts with.
func DefaultConfig(k Kind) Config {
	switch k {
	case AsSound:
		return AsSoundConfig{Blend: 0.50}
	case FractalPixelSort:
		return FractalPixelSortConfig{Intensity: 6.0}
	case Brightness:
		return BrightnessConfig{Intensity: 1.0}
	case Tint:
		return TintConfig{R: 255, G: 255, B: 255}
	case Grayscale:
		return GrayscaleConfig{Intensity: 1.0}
	default:
		return NoneConfig{}
	}
}
