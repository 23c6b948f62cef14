// Package stack is the layer stack controller. It owns the ordered layers,
// their selections and histories, and re-renders every layer's filter onto
// the canvas from the baseline captured when the image was loaded.
//
// Operations never fail: indices out of range and a missing canvas make
// them no-ops. A Stack is not safe for concurrent use.
package stack

import (
	"math/rand/v2"

	"bendor/internal/filter"
	"bendor/internal/logging"
	"bendor/internal/selection"
	"bendor/internal/surface"
)

// Direction is where MoveLayer sends a layer. Up is towards index 0.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Patch lists the selection fields to change. Nil fields are kept.
type Patch struct {
	Start  *selection.Point
	Points []selection.Point
	Area   []selection.Point
	Filter *selection.Kind
	Config selection.Config
}

type Stack struct {
	surface  surface.Surface
	baseline []selection.Point
	layers   []Layer
	selected int

	env   filter.Env
	rng   *rand.Rand
	color func() string
}

type Option func(*Stack)

// WithRand fixes the random source used for layer colours and the
// randomised filters.
func WithRand(r *rand.Rand) Option {
	return func(s *Stack) {
		s.rng = r
	}
}

// WithColorFunc replaces the layer colour generator.
func WithColorFunc(f func() string) Option {
	return func(s *Stack) {
		s.color = f
	}
}

// WithEnv sets the filter environment. A Rand set by WithRand wins.
func WithEnv(env filter.Env) Option {
	return func(s *Stack) {
		s.env = env
	}
}

func New(opts ...Option) *Stack {
	s := &Stack{
		baseline: []selection.Point{},
		selected: -1,
		env:      filter.DefaultEnv(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		if s.env.Rand != nil {
			s.rng = s.env.Rand
		} else {
			s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	s.env.Rand = s.rng
	if s.color == nil {
		s.color = func() string { return randomColor(s.rng) }
	}
	return s
}

// Load attaches a canvas, captures its pixels as the baseline, and drops
// all layers.
func (s *Stack) Load(surf surface.Surface) {
	s.surface = surf
	s.baseline = []selection.Point{}
	if surf != nil {
		s.baseline = selection.CaptureBaseline(surf)
	}
	s.layers = nil
	s.selected = -1
	logging.Logger().Debug("stack: load", "pixels", len(s.baseline))
}

// Surface returns the attached canvas, nil before Load.
func (s *Stack) Surface() surface.Surface { return s.surface }

// Baseline returns the pixels captured at load time. Callers must not
// modify it.
func (s *Stack) Baseline() []selection.Point { return s.baseline }

// Sampler reads colours from the baseline rather than the live canvas,
// so selections always capture the original image.
func (s *Stack) Sampler() selection.Sampler {
	return baselineSampler{points: s.baseline, w: s.width(), h: s.height()}
}

// Sample annotates points with their baseline colour, dropping points
// outside the image.
func (s *Stack) Sample(points []selection.Point) []selection.Point {
	return selection.Sample(points, s.Sampler())
}

func (s *Stack) width() int {
	if s.surface == nil {
		return 0
	}
	return s.surface.Width()
}

func (s *Stack) height() int {
	if s.surface == nil {
		return 0
	}
	return s.surface.Height()
}

// Layers returns a copy of the layer list.
func (s *Stack) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Layer returns the layer at i.
func (s *Stack) Layer(i int) (Layer, bool) {
	if !s.inBounds(i) {
		return Layer{}, false
	}
	return s.layers[i], true
}

func (s *Stack) Len() int { return len(s.layers) }

// Selected returns the selected index, -1 when there are no layers.
func (s *Stack) Selected() int { return s.selected }

// CurrentLayer returns the selected layer, or nil when there is none.
// The pointer is only valid until the next mutation.
func (s *Stack) CurrentLayer() *Layer {
	if !s.inBounds(s.selected) {
		return nil
	}
	return &s.layers[s.selected]
}

func (s *Stack) inBounds(i int) bool {
	return i >= 0 && i < len(s.layers)
}

// CreateLayer appends an empty layer, selects it and returns its index.
func (s *Stack) CreateLayer() int {
	s.layers = append(s.layers, newLayer(selection.New(), s.color()))
	s.selected = len(s.layers) - 1
	logging.Logger().Debug("stack: create layer", "index", s.selected)
	return s.selected
}

func (s *Stack) SelectLayer(i int) bool {
	if !s.inBounds(i) {
		return false
	}
	s.selected = i
	return true
}

// UpdateSelection merges patch into layer i's selection. Changing the
// filter resets the config to the new filter's defaults and ignores any
// config in the same patch. A config for the current filter replaces it.
//
// With seed the history's present is replaced without an undo step, which
// is how a layer's first selection is recorded. Otherwise the result is
// pushed onto the history.
func (s *Stack) UpdateSelection(i int, patch Patch, seed bool) bool {
	if !s.inBounds(i) {
		return false
	}
	l := &s.layers[i]
	next := l.Selection.Clone()
	if patch.Start != nil {
		next.Start = *patch.Start
	}
	if patch.Points != nil {
		next.Points = append([]selection.Point{}, patch.Points...)
	}
	if patch.Area != nil {
		next.Area = append([]selection.Point{}, patch.Area...)
	}
	switch {
	case patch.Filter != nil && *patch.Filter != next.Filter:
		next.SetFilter(*patch.Filter)
	case patch.Config != nil:
		next.SetConfig(patch.Config)
	}

	l.Selection = next
	if seed {
		l.Commands = l.Commands.Seed(next.Clone())
	} else {
		l.Commands = l.Commands.Set(next.Clone())
	}
	logging.Logger().Debug("stack: update selection",
		"index", i, "filter", next.Filter, "area", len(next.Area), "seed", seed)
	return true
}

// SetPoints records a traced path on the selected layer.
func (s *Stack) SetPoints(start selection.Point, points []selection.Point) bool {
	if points == nil {
		points = []selection.Point{}
	}
	return s.UpdateSelection(s.selected, Patch{Start: &start, Points: points}, false)
}

// SetLayerSurface gives layer i its render handle.
func (s *Stack) SetLayerSurface(i int, surf surface.Surface) bool {
	if !s.inBounds(i) {
		return false
	}
	s.layers[i].Surface = surf
	return true
}

// Undo restores layer i's previous selection.
func (s *Stack) Undo(i int) bool {
	if !s.inBounds(i) || !s.layers[i].Commands.CanUndo() {
		return false
	}
	l := &s.layers[i]
	l.Commands = l.Commands.Undo()
	l.Selection = l.Commands.Present().Clone()
	logging.Logger().Debug("stack: undo", "index", i)
	return true
}

// Redo reapplies the selection most recently undone on layer i.
func (s *Stack) Redo(i int) bool {
	if !s.inBounds(i) || !s.layers[i].Commands.CanRedo() {
		return false
	}
	l := &s.layers[i]
	l.Commands = l.Commands.Redo()
	l.Selection = l.Commands.Present().Clone()
	logging.Logger().Debug("stack: redo", "index", i)
	return true
}

// DeleteLayer removes layer i. The selected index is kept, clamped to the
// last layer, or -1 when none are left.
func (s *Stack) DeleteLayer(i int) bool {
	if !s.inBounds(i) {
		return false
	}
	s.layers = append(s.layers[:i:i], s.layers[i+1:]...)
	switch {
	case len(s.layers) == 0:
		s.selected = -1
	case s.selected >= len(s.layers):
		s.selected = len(s.layers) - 1
	}
	logging.Logger().Debug("stack: delete layer", "index", i, "selected", s.selected)
	return true
}

// MoveLayer swaps layer i with its neighbour in dir and returns the
// layer's new index. Render handles stay with their positions. The
// selection follows the layer it was on.
func (s *Stack) MoveLayer(i int, dir Direction) (int, bool) {
	to := i + 1
	if dir == Up {
		to = i - 1
	}
	if !s.inBounds(i) || !s.inBounds(to) {
		return i, false
	}
	a, b := &s.layers[i], &s.layers[to]
	*a, *b = *b, *a
	a.Surface, b.Surface = b.Surface, a.Surface

	switch s.selected {
	case i:
		s.selected = to
	case to:
		s.selected = i
	}
	logging.Logger().Debug("stack: move layer", "from", i, "to", to, "direction", dir)
	return to, true
}

// DuplicateLayer appends a copy of layer i's selection as a new layer with
// its own colour and a fresh history, selects it and returns its index.
// It returns -1 when i is out of range.
func (s *Stack) DuplicateLayer(i int) int {
	if !s.inBounds(i) {
		return -1
	}
	s.layers = append(s.layers, newLayer(s.layers[i].Selection.Clone(), s.color()))
	s.selected = len(s.layers) - 1
	logging.Logger().Debug("stack: duplicate layer", "from", i, "to", s.selected)
	return s.selected
}

// ClearLayers drops every layer and detaches the canvas.
func (s *Stack) ClearLayers() {
	s.surface = nil
	s.baseline = []selection.Point{}
	s.layers = nil
	s.selected = -1
}

// ResetCanvas writes the baseline pixels back, removing every drawn
// filter effect.
func (s *Stack) ResetCanvas() {
	if s.surface == nil {
		return
	}
	rect, ok := selection.BoundingBox(s.baseline)
	if !ok {
		return
	}
	region := s.surface.GetRegion(rect.MinX, rect.MinY, rect.Width, rect.Height)
	for _, p := range s.baseline {
		if !p.Captured || !rect.Contains(p.X, p.Y) {
			continue
		}
		i := rect.Index(p.X, p.Y)
		copy(region[i:i+4], p.Data[:])
	}
	s.surface.PutRegion(region, rect.MinX, rect.MinY, rect.Width, rect.Height)
}

// GenerateResult applies every layer's filter in stack order, each over
// the bounding box of its working points.
func (s *Stack) GenerateResult() {
	if s.surface == nil {
		return
	}
	for i, l := range s.layers {
		points := l.Selection.Working(s.baseline)
		rect, ok := selection.BoundingBox(points)
		if !ok {
			continue
		}
		region := s.surface.GetRegion(rect.MinX, rect.MinY, rect.Width, rect.Height)
		filter.Apply(l.Selection.Filter, region, rect, points, l.Selection.Config, s.env)
		s.surface.PutRegion(region, rect.MinX, rect.MinY, rect.Width, rect.Height)
		logging.Logger().Debug("stack: apply", "index", i, "filter", l.Selection.Filter, "points", len(points))
	}
}

// Render redraws the canvas from the baseline with every layer applied.
func (s *Stack) Render() {
	s.ResetCanvas()
	s.GenerateResult()
}

type baselineSampler struct {
	points []selection.Point
	w, h   int
}

func (b baselineSampler) Width() int  { return b.w }
func (b baselineSampler) Height() int { return b.h }

func (b baselineSampler) ColorAt(x, y int) (selection.Color, bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return selection.Color{}, false
	}
	i := y*b.w + x
	if i >= len(b.points) {
		return selection.Color{}, false
	}
	return b.points[i].Data, true
}
