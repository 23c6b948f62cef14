package main

import (
	"bytes"
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"

	"bendor/internal/export"
	"bendor/internal/logging"
	"bendor/internal/surface"
)

func (m *model) exportPNG() {
	if m.canvas == nil {
		m.errorMessage = "No image to export"
		return
	}
	path, err := export.WritePNG(m.config.SaveDir(), m.canvas)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.copyPath(path)
}

func (m *model) exportLayerMap() {
	if m.canvas == nil {
		m.errorMessage = "No image to export"
		return
	}
	img, err := export.LayerMap(m.canvas.Snapshot(), m.stack.Layers())
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	path, err := export.WritePNG(m.config.SaveDir(), img)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.copyPath(path)
}

// exportGIF captures the frames here, since they share the one canvas,
// and leaves encoding to a command running off the update loop.
func (m *model) exportGIF() tea.Cmd {
	if m.canvas == nil {
		m.errorMessage = "No image to export"
		return nil
	}
	if m.exporting {
		m.errorMessage = "Export already running"
		return nil
	}
	opts := m.config.GIF
	if err := opts.Validate(); err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	frames, err := export.CaptureFrames(context.Background(), export.StackRenderer{Stack: m.stack}, m.config.Frames)
	if err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	m.exporting = true
	m.successMessage = fmt.Sprintf("Encoding %d frames...", len(frames))

	dir := m.config.SaveDir()
	return func() tea.Msg {
		path, err := export.WriteGIF(dir, export.GIFEncoder{}, frames, opts)
		if err != nil {
			logging.Logger().Error("gif export failed", "err", err)
		}
		return exportDoneMsg{kind: "GIF", path: path, err: err}
	}
}

// decodeImage decodes image bytes that were read up front, such as an
// image piped on stdin.
func decodeImage(name string, data []byte, maxDim int) tea.Cmd {
	return func() tea.Msg {
		img, err := surface.Decode(bytes.NewReader(data), maxDim)
		return imageLoadedMsg{path: name, image: img, err: err}
	}
}

// loadImage decodes path off the update loop.
func loadImage(path string, maxDim int) tea.Cmd {
	return func() tea.Msg {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return imageLoadedMsg{path: path, err: err}
		}
		img, err := surface.Load(expanded, maxDim)
		return imageLoadedMsg{path: expanded, image: img, err: err}
	}
}
