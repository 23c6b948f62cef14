package main

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bendor/internal/selection"
	"bendor/internal/stack"
	"bendor/internal/surface"
)

type model struct {
	width   int
	height  int
	cursorX int // image pixel coordinates
	cursorY int

	mode       Mode
	help       bool
	helpScroll int

	stack     *stack.Stack
	canvas    *surface.Image
	imagePath string

	trace        []selection.Point
	traceOverlay *surface.Image
	configField  int

	input         textinput.Model
	confirmAction ConfirmAction
	pendingPath   string
	piped         []byte // image bytes read from stdin
	exporting     bool

	errorMessage   string
	successMessage string
	config         *Config
}

// exportDoneMsg reports a finished background export.
type exportDoneMsg struct {
	kind string
	path string
	err  error
}

// imageLoadedMsg carries a decoded image back to Update.
type imageLoadedMsg struct {
	path  string
	image *surface.Image
	err   error
}
