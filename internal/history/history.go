// Package history maintains the undo/redo stacks of the editor.
//
// Every stack entry is a fully independent snapshot: pushes always deep-copy
// the raster they are given, so later mutation of the live image can never
// retroactively alter history. Memory cost is O(stack depth x image size);
// no delta compression is attempted.
package history

import (
	"errors"

	"github.com/ironsheep/image-editor/internal/raster"
)

// ErrNoUndo is returned by Undo when the undo stack is empty.
var ErrNoUndo = errors.New("no undo actions available")

// ErrNoRedo is returned by Redo when the redo stack is empty.
var ErrNoRedo = errors.New("no redo actions available")

// Manager holds the undo and redo stacks. The zero value is ready to use.
//
// The manager never snapshots on its own: the caller must invoke SaveState
// with the pre-mutation image immediately before applying any mutating
// operation. Forgetting to do so is a caller bug, not a manager fault.
type Manager struct {
	undo []*raster.Image
	redo []*raster.Image
}

// NewManager returns an empty history manager.
func NewManager() *Manager {
	return &Manager{}
}

// SaveState pushes a deep copy of img onto the undo stack and invalidates
// the redo stack. Any new edit forks the timeline; a branching history is
// not supported, so the abandoned redo entries are discarded.
func (m *Manager) SaveState(img *raster.Image) {
	m.undo = append(m.undo, img.Clone())
	m.redo = m.redo[:0]
}

// Undo pushes a deep copy of current onto the redo stack and pops the most
// recent undo entry, which becomes the new live image. Fails with ErrNoUndo
// when there is nothing to undo; current is not copied in that case.
func (m *Manager) Undo(current *raster.Image) (*raster.Image, error) {
	if len(m.undo) == 0 {
		return nil, ErrNoUndo
	}
	m.redo = append(m.redo, current.Clone())
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return top, nil
}

// Redo is the mirror of Undo: it pushes a deep copy of current onto the undo
// stack and pops the most recent redo entry. Fails with ErrNoRedo when there
// is nothing to redo.
func (m *Manager) Redo(current *raster.Image) (*raster.Image, error) {
	if len(m.redo) == 0 {
		return nil, ErrNoRedo
	}
	m.undo = append(m.undo, current.Clone())
	top := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	return top, nil
}

// ClearHistory empties both stacks. Called when a new image is loaded.
func (m *Manager) ClearHistory() {
	m.undo = nil
	m.redo = nil
}

// CanUndo reports whether an undo entry is available. The UI layer uses
// this to enable or disable its undo affordance.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether a redo entry is available.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Depth returns the current sizes of the undo and redo stacks.
func (m *Manager) Depth() (undo, redo int) {
	return len(m.undo), len(m.redo)
}
