package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"bendor/internal/selection"
	"bendor/internal/surface"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff0066")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(panelWidth - 2)
)

// previewSize is the number of terminal cells available for the image.
func (m model) previewSize() (cols, rows int) {
	return max(1, m.width-panelWidth), max(1, m.height-1)
}

// previewScale is how many image pixels one cell column covers. Each cell
// shows two pixel rows, so vertically a cell covers twice as many.
func (m model) previewScale() int {
	if m.canvas == nil {
		return 1
	}
	cols, rows := m.previewSize()
	sx := (m.canvas.Width() + cols - 1) / cols
	sy := (m.canvas.Height() + rows*2 - 1) / (rows * 2)
	return max(1, sx, sy)
}

func hexOf(c selection.Color) string {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.Hex()
}

// anyOpaque reports whether surf has coverage in the s x s block at (x, y).
func anyOpaque(surf *surface.Image, x, y, s int) bool {
	for dy := 0; dy < s; dy++ {
		for dx := 0; dx < s; dx++ {
			if surf.Opaque(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// overlayAt returns the colour of the topmost outline covering the block
// at (x, y): the path being traced, then the selected layer, then the
// rest in stack order.
func (m model) overlayAt(x, y, s int) (string, bool) {
	if m.traceOverlay != nil && len(m.trace) > 0 && anyOpaque(m.traceOverlay, x, y, s) {
		return traceColor, true
	}
	if l := m.stack.CurrentLayer(); l != nil {
		if img, ok := l.Surface.(*surface.Image); ok && anyOpaque(img, x, y, s) {
			return l.Color, true
		}
	}
	for i, l := range m.stack.Layers() {
		if i == m.stack.Selected() {
			continue
		}
		if img, ok := l.Surface.(*surface.Image); ok && anyOpaque(img, x, y, s) {
			return l.Color, true
		}
	}
	return "", false
}

func (m model) pixelHex(x, y, s int) string {
	if hex, ok := m.overlayAt(x, y, s); ok {
		return hex
	}
	c, ok := m.canvas.ColorAt(x, y)
	if !ok {
		return emptyPixel
	}
	return hexOf(c)
}

// renderPreview draws the canvas with half blocks: the foreground colours
// the upper pixel row of a cell and the background the lower one.
func (m model) renderPreview() []string {
	cols, rows := m.previewSize()
	if m.canvas == nil {
		lines := make([]string, rows)
		lines[rows/2] = dimStyle.Render(centered("no image loaded, press o to open one", cols))
		return lines
	}

	s := m.previewScale()
	w, h := m.canvas.Width(), m.canvas.Height()
	cursorCol, cursorRow := m.cursorX/s, m.cursorY/(2*s)

	lines := make([]string, 0, rows)
	var b strings.Builder
	for cy := 0; cy < rows && 2*cy*s < h; cy++ {
		b.Reset()
		y0, y1 := 2*cy*s, (2*cy+1)*s
		for cx := 0; cx < cols && cx*s < w; cx++ {
			if cx == cursorCol && cy == cursorRow {
				b.WriteString(cursorStyle.Render(cursorGlyph))
				continue
			}
			x := cx * s
			top := m.pixelHex(x, y0, s)
			bottom := emptyPixel
			if y1 < h {
				bottom = m.pixelHex(x, y1, s)
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func centered(text string, width int) string {
	pad := max(0, (width-len(text))/2)
	return strings.Repeat(" ", pad) + text
}

// renderPanel lists the layers and the current layer's filter config.
func (m model) renderPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("bendor"))
	b.WriteString("\n")
	if m.canvas != nil {
		fmt.Fprintf(&b, "%s %dx%d\n", filepath.Base(m.imagePath), m.canvas.Width(), m.canvas.Height())
	} else {
		b.WriteString(dimStyle.Render("no image") + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Layers") + "\n")
	layers := m.stack.Layers()
	if len(layers) == 0 {
		b.WriteString(dimStyle.Render("none, press n") + "\n")
	}
	for i, l := range layers {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render("■")
		line := fmt.Sprintf("%d %s", i, l.Selection.Filter)
		if len(l.Selection.Area) == 0 {
			line += dimStyle.Render(" (whole image)")
		}
		if i == m.stack.Selected() {
			line = selectedStyle.Render(line)
		}
		b.WriteString(swatch + " " + line + "\n")
	}

	if l := m.stack.CurrentLayer(); l != nil {
		fmt.Fprintf(&b, "\n%s\n", titleStyle.Render("Config: "+l.Selection.Filter.String()))
		fields := configFields(l.Selection.Config)
		if len(fields) == 0 {
			b.WriteString(dimStyle.Render("nothing to adjust") + "\n")
		}
		for i, f := range fields {
			line := fmt.Sprintf("%-10s %s", f.name, f.value)
			if i == m.configField {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		fmt.Fprintf(&b, "\nundo %s  redo %s\n", mark(l.CanUndo()), mark(l.CanRedo()))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// drawTrace redraws the path being traced onto the trace overlay.
func (m *model) drawTrace() {
	if m.traceOverlay == nil {
		return
	}
	m.traceOverlay.Clear()
	m.traceOverlay.DrawOutline(m.trace, traceColor)
}

// refreshOverlays redraws every layer's outline onto the surface held at
// its position.
func (m *model) refreshOverlays() {
	for _, l := range m.stack.Layers() {
		img, ok := l.Surface.(*surface.Image)
		if !ok {
			continue
		}
		img.Clear()
		img.DrawOutline(l.Selection.Points, l.Color)
	}
}
