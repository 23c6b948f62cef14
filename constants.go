package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeTrace
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteLayer ConfirmAction = iota
	ConfirmQuit
	ConfirmOpenImage
)

const (
	panelWidth  = 34
	traceColor  = "#ffff00"
	cursorGlyph = "+"
	halfBlock   = "▀"
	emptyPixel  = "#000000"

	// stdinPath as the image argument reads the image from standard input.
	stdinPath = "-"
)
