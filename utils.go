package main

import (
	"fmt"

	"github.com/atotto/clipboard"

	"bendor/internal/logging"
	"bendor/internal/selection"
	"bendor/internal/stack"
	"bendor/internal/surface"
)

// rerender redraws the canvas from the baseline and every layer's
// outline. Every edit goes through here so effects never compound.
func (m *model) rerender() {
	m.stack.Render()
	m.refreshOverlays()
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

// attachImage makes img the canvas and starts over with no layers.
func (m *model) attachImage(path string, img *surface.Image) {
	m.canvas = img
	m.imagePath = path
	m.stack.Load(img)
	m.traceOverlay = surface.New(img.Width(), img.Height())
	m.trace = nil
	m.configField = 0
	m.cursorX, m.cursorY = img.Width()/2, img.Height()/2
	logging.Logger().Info("image loaded", "path", path, "width", img.Width(), "height", img.Height())
}

// newLayer appends a layer with its own outline surface and selects it.
func (m *model) newLayer() int {
	i := m.stack.CreateLayer()
	m.attachOverlay(i)
	m.configField = 0
	return i
}

func (m *model) attachOverlay(i int) {
	if m.canvas != nil {
		m.stack.SetLayerSurface(i, surface.New(m.canvas.Width(), m.canvas.Height()))
	}
}

// closeTrace turns the traced path into the current layer's selection.
// The first selection of a layer seeds its history; later ones are undo
// steps.
func (m *model) closeTrace() {
	path := m.trace
	m.trace = nil
	if m.traceOverlay != nil {
		m.traceOverlay.Clear()
	}
	if len(path) == 0 || m.canvas == nil {
		return
	}

	i := m.stack.Selected()
	if i < 0 {
		i = m.newLayer()
	}
	area := m.stack.Sample(selection.FillPolygon(path, m.canvas.Width(), m.canvas.Height()))
	l := m.stack.CurrentLayer()
	if l.Selection.IsEmpty() {
		start := path[0]
		m.stack.UpdateSelection(i, stack.Patch{Start: &start, Points: path, Area: area}, true)
	} else {
		m.stack.SetPoints(path[0], path)
		m.stack.UpdateSelection(i, stack.Patch{Area: area}, true)
	}
	m.rerender()
	m.successMessage = "Selected " + plural(len(area), "pixel")
}

func (m *model) cycleFilter(next bool) {
	l := m.stack.CurrentLayer()
	if l == nil {
		m.errorMessage = "No layer selected"
		return
	}
	k := l.Selection.Filter.Prev()
	if next {
		k = l.Selection.Filter.Next()
	}
	m.stack.UpdateSelection(m.stack.Selected(), stack.Patch{Filter: &k}, false)
	m.configField = 0
	m.rerender()
}

func (m *model) stepConfig(dir int) {
	l := m.stack.CurrentLayer()
	if l == nil {
		m.errorMessage = "No layer selected"
		return
	}
	cfg := adjustConfig(l.Selection.Config, m.configField, dir)
	if cfg == l.Selection.Config {
		return
	}
	m.stack.UpdateSelection(m.stack.Selected(), stack.Patch{Config: cfg}, false)
	m.rerender()
}

func (m *model) stepField(dir int) {
	l := m.stack.CurrentLayer()
	if l == nil {
		return
	}
	n := len(configFields(l.Selection.Config))
	if n == 0 {
		m.configField = 0
		return
	}
	m.configField = (m.configField + dir + n) % n
}

func (m *model) selectRelative(dir int) {
	n := m.stack.Len()
	if n == 0 {
		return
	}
	m.stack.SelectLayer((m.stack.Selected() + dir + n) % n)
	m.configField = 0
}

// copyPath puts an exported file's path on the clipboard. Failure only
// changes the status message.
func (m *model) copyPath(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.successMessage = "Saved " + path
		return
	}
	m.successMessage = "Saved " + path + " (path copied)"
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
