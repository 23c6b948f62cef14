package stack

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"bendor/internal/history"
	"bendor/internal/selection"
	"bendor/internal/surface"
)

// Layer is one entry of the stack: a selection with its filter, a display
// colour, and the selection's undo history.
type Layer struct {
	Selection selection.Selection
	// Color is a hex string used only to tell layers apart on screen.
	Color    string
	Commands history.History[selection.Selection]
	// Surface is the layer's own render handle. It belongs to the layer's
	// position in the stack, not to the layer, and may be nil.
	Surface surface.Surface
}

func newLayer(sel selection.Selection, color string) Layer {
	return Layer{
		Selection: sel,
		Color:     color,
		Commands:  history.New(sel.Clone()),
	}
}

// CanUndo reports whether the layer has a previous selection.
func (l Layer) CanUndo() bool { return l.Commands.CanUndo() }

// CanRedo reports whether an undone selection can be restored.
func (l Layer) CanRedo() bool { return l.Commands.CanRedo() }

// randomColor picks a saturated colour so outlines stay visible over
// most images.
func randomColor(rng *rand.Rand) string {
	return colorful.Hsv(rng.Float64()*360, 0.55+rng.Float64()*0.45, 0.7+rng.Float64()*0.3).Clamped().Hex()
}
