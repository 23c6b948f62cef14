// Package selection models a layer's pixel selection: the traced path, the
// resolved area a filter works on, and the filter with its configuration.
package selection

import "slices"

// Selection is one layer's region and filter.
//
// Points is the raw path the user traced. Area is the set of pixels the
// filter actually operates on; it is usually the filled polygon of Points.
type Selection struct {
	Start  Point
	Points []Point
	Area   []Point
	Filter Kind
	Config Config
}

// New returns an empty selection with no filter.
func New() Selection {
	return Selection{
		Points: []Point{},
		Area:   []Point{},
		Filter: None,
		Config: DefaultConfig(None),
	}
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	c := s
	c.Points = slices.Clone(s.Points)
	c.Area = slices.Clone(s.Area)
	if c.Points == nil {
		c.Points = []Point{}
	}
	if c.Area == nil {
		c.Area = []Point{}
	}
	if c.Config == nil {
		c.Config = DefaultConfig(c.Filter)
	}
	return c
}

// SetFilter switches the filter. Changing the kind resets the config to
// that kind's defaults in the same step.
func (s *Selection) SetFilter(k Kind) {
	if k == s.Filter && s.Config != nil && s.Config.Kind() == k {
		return
	}
	s.Filter = k
	s.Config = DefaultConfig(k)
}

// SetConfig replaces the config if it belongs to the current filter.
func (s *Selection) SetConfig(cfg Config) bool {
	if cfg == nil || cfg.Kind() != s.Filter {
		return false
	}
	s.Config = cfg
	return true
}

// Working returns the captured points of Area, or baseline when the area
// holds none.
func (s Selection) Working(baseline []Point) []Point {
	points := make([]Point, 0, len(s.Area))
	for _, p := range s.Area {
		if p.Captured {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return baseline
	}
	return points
}

// IsEmpty reports whether nothing has been traced or resolved yet.
func (s Selection) IsEmpty() bool {
	return len(s.Points) == 0 && len(s.Area) == 0
}
