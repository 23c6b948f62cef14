// Package export turns the canvas into files: single PNG frames, animated
// GIFs built from repeated re-renders, and a PNG map of the layers.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"

	"bendor/internal/logging"
	"bendor/internal/stack"
)

// Renderer is the canvas as the frame capture loop sees it.
type Renderer interface {
	// Render redraws the canvas from scratch.
	Render()
	// Snapshot returns an independent copy of the current pixels.
	Snapshot() *image.RGBA
}

// StackRenderer renders a layer stack whose surface can be snapshotted.
type StackRenderer struct {
	Stack *stack.Stack
}

func (r StackRenderer) Render() { r.Stack.Render() }

func (r StackRenderer) Snapshot() *image.RGBA {
	snap, ok := r.Stack.Surface().(interface{ Snapshot() *image.RGBA })
	if !ok {
		return nil
	}
	return snap.Snapshot()
}

var ErrNoCanvas = errors.New("no canvas to capture")

// CaptureFrames returns n frames. The first is the canvas as it is now;
// every following frame is taken after a full re-render, so randomised
// filters give each frame its own look. Cancellation is checked between
// renders.
func CaptureFrames(ctx context.Context, r Renderer, n int) ([]*image.RGBA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("capture %d frames: count must be positive", n)
	}
	frames := make([]*image.RGBA, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("capture frame %d: %w", i, err)
		}
		if i > 0 {
			r.Render()
		}
		frame := r.Snapshot()
		if frame == nil {
			return nil, fmt.Errorf("capture frame %d: %w", i, ErrNoCanvas)
		}
		frames = append(frames, frame)
	}
	logging.Logger().Debug("export: captured frames", "count", len(frames))
	return frames, nil
}
