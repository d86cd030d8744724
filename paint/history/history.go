// Package history keeps bounded undo and redo stacks of canvas snapshots.
package history

import "pixed/paint/pixbuf"

// MaxDepth is how many undo steps are retained. Pushing past it drops
// the oldest snapshot.
const MaxDepth = 50

type snapshot struct {
	width  int
	height int
	pix    []uint8
}

func capture(b *pixbuf.Buffer) snapshot {
	return snapshot{
		width:  b.Width(),
		height: b.Height(),
		pix:    append([]uint8(nil), b.Bytes()...),
	}
}

func (s snapshot) restore(b *pixbuf.Buffer) {
	b.Resize(s.width, s.height)
	b.SetBytes(s.pix)
}

// History records canvas states before mutations so they can be walked
// back and forth. The zero value is ready to use.
type History struct {
	undo []snapshot
	redo []snapshot
}

func New() *History { return &History{} }

// Push records the current canvas as an undo point and discards any
// redo states, since the timeline is forking.
func (h *History) Push(b *pixbuf.Buffer) {
	h.undo = append(h.undo, capture(b))
	if len(h.undo) > MaxDepth {
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:MaxDepth]
	}
	h.redo = h.redo[:0]
}

// Undo restores the most recent snapshot into b, saving the present
// state for Redo. It reports whether anything was undone.
func (h *History) Undo(b *pixbuf.Buffer) bool {
	if len(h.undo) == 0 {
		return false
	}
	h.redo = append(h.redo, capture(b))
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	s.restore(b)
	return true
}

// Redo reverses the last Undo. It reports whether anything was redone.
func (h *History) Redo(b *pixbuf.Buffer) bool {
	if len(h.redo) == 0 {
		return false
	}
	h.undo = append(h.undo, capture(b))
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	s.restore(b)
	return true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
