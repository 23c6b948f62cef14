// Package history implements linear undo/redo over snapshots.
//
// A History is a value: every operation returns a new History and leaves
// the receiver untouched. Snapshots are stored as given, so callers that
// hold mutable data must pass deep copies.
package history

import "slices"

// History keeps the snapshots before and after the present one.
type History[T any] struct {
	past    []T
	present T
	future  []T
}

// New starts a history at initial with nothing to undo or redo.
func New[T any](initial T) History[T] {
	return History[T]{present: initial}
}

// Present returns the current snapshot.
func (h History[T]) Present() T {
	return h.present
}

// Set records next as the present snapshot. The old present becomes
// undoable and any redo branch is discarded. Callers should not set a
// value equal to the present one; that records an empty undo step.
func (h History[T]) Set(next T) History[T] {
	past := make([]T, len(h.past), len(h.past)+1)
	copy(past, h.past)
	return History[T]{
		past:    append(past, h.present),
		present: next,
	}
}

// Seed replaces the present snapshot without recording an undo step.
// It exists for the moment a selection is first drawn, when the empty
// initial snapshot should not become undoable.
func (h History[T]) Seed(present T) History[T] {
	return History[T]{
		past:    slices.Clone(h.past),
		present: present,
		future:  slices.Clone(h.future),
	}
}

func (h History[T]) CanUndo() bool {
	return len(h.past) > 0
}

func (h History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Undo steps back one snapshot. Without anything to undo it returns h.
func (h History[T]) Undo() History[T] {
	if !h.CanUndo() {
		return h
	}
	last := len(h.past) - 1
	future := make([]T, 0, len(h.future)+1)
	future = append(future, h.present)
	future = append(future, h.future...)
	return History[T]{
		past:    slices.Clone(h.past[:last]),
		present: h.past[last],
		future:  future,
	}
}

// Redo steps forward one snapshot. Without anything to redo it returns h.
func (h History[T]) Redo() History[T] {
	if !h.CanRedo() {
		return h
	}
	past := make([]T, len(h.past), len(h.past)+1)
	copy(past, h.past)
	return History[T]{
		past:    append(past, h.present),
		present: h.future[0],
		future:  slices.Clone(h.future[1:]),
	}
}

// Len returns how many snapshots can be undone and redone.
func (h History[T]) Len() (undo, redo int) {
	return len(h.past), len(h.future)
}
