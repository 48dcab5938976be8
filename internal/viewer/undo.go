package viewer

import "doorlab/internal/door"

const maxUndoStack = 50

// pushUndo records the config in effect before an edit.
func (v *Viewer) pushUndo(cfg door.Config) {
	if len(v.undoStack) >= maxUndoStack {
		v.undoStack = v.undoStack[1:]
	}
	v.undoStack = append(v.undoStack, cfg)
}

// undo reverts to the last recorded config, applying it through the same
// observer path a slider edit takes.
func (v *Viewer) undo() {
	if len(v.undoStack) == 0 {
		return
	}
	cfg := v.undoStack[len(v.undoStack)-1]
	v.undoStack = v.undoStack[:len(v.undoStack)-1]

	v.ConfigChanged.Invoke(cfg)
	v.uiWidth, v.uiHeight = v.doorCfg.Width, v.doorCfg.Height
	v.toastf("Undo to %.1f x %.1f", cfg.Width, cfg.Height)
}
