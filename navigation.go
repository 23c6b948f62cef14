package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bendor/internal/selection"
)

// handleNavigation moves the cursor one preview cell, or two with shift.
// It reports whether msg was a movement key.
func (m *model) handleNavigation(msg tea.KeyMsg) bool {
	dx, dy := 0, 0
	speed := 1
	switch {
	case key.Matches(msg, keys.Left):
		dx = -1
	case key.Matches(msg, keys.Right):
		dx = 1
	case key.Matches(msg, keys.Up):
		dy = -1
	case key.Matches(msg, keys.Down):
		dy = 1
	case key.Matches(msg, keys.FastLeft):
		dx, speed = -1, 2
	case key.Matches(msg, keys.FastRight):
		dx, speed = 1, 2
	case key.Matches(msg, keys.FastUp):
		dy, speed = -1, 2
	case key.Matches(msg, keys.FastDown):
		dy, speed = 1, 2
	default:
		return false
	}

	step := m.previewScale() * speed
	m.cursorX += dx * step
	m.cursorY += dy * step
	m.ensureCursorInBounds()
	if m.mode == ModeTrace {
		m.addTracePoint()
	}
	return true
}

func (m *model) ensureCursorInBounds() {
	if m.canvas == nil {
		m.cursorX, m.cursorY = 0, 0
		return
	}
	m.cursorX = min(max(m.cursorX, 0), m.canvas.Width()-1)
	m.cursorY = min(max(m.cursorY, 0), m.canvas.Height()-1)
}

// addTracePoint appends the cursor to the path being traced, skipping
// repeats of the last point.
func (m *model) addTracePoint() {
	p := selection.At(m.cursorX, m.cursorY)
	if n := len(m.trace); n > 0 && m.trace[n-1].X == p.X && m.trace[n-1].Y == p.Y {
		return
	}
	m.trace = append(m.trace, p)
	m.drawTrace()
}
