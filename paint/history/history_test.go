package history

import (
	"image/color"
	"testing"

	"pixed/paint/pixbuf"
)

func TestUndoRedo(t *testing.T) {
	h := New()
	b := pixbuf.New(4, 4)
	red := color.RGBA{R: 255, A: 255}

	h.Push(b)
	b.SetPixel(1, 1, red)

	if !h.Undo(b) {
		t.Fatal("undo returned false")
	}
	if b.RGBAAt(1, 1) != pixbuf.White {
		t.Fatalf("undo left pixel = %v", b.RGBAAt(1, 1))
	}

	if !h.Redo(b) {
		t.Fatal("redo returned false")
	}
	if b.RGBAAt(1, 1) != red {
		t.Fatalf("redo left pixel = %v", b.RGBAAt(1, 1))
	}
}

func TestUndoRestoresDims(t *testing.T) {
	h := New()
	b := pixbuf.New(4, 4)
	h.Push(b)
	b.Resize(9, 3)

	if !h.Undo(b) {
		t.Fatal("undo returned false")
	}
	if b.Width() != 4 || b.Height() != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", b.Width(), b.Height())
	}
	if !h.Redo(b) {
		t.Fatal("redo returned false")
	}
	if b.Width() != 9 || b.Height() != 3 {
		t.Fatalf("dims = %dx%d, want 9x3", b.Width(), b.Height())
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New()
	b := pixbuf.New(2, 2)

	h.Push(b)
	b.SetPixel(0, 0, color.RGBA{A: 255})
	h.Undo(b)
	if !h.CanRedo() {
		t.Fatal("expected redo after undo")
	}

	h.Push(b)
	if h.CanRedo() {
		t.Fatal("push kept redo states alive")
	}
	if h.Redo(b) {
		t.Fatal("redo succeeded after push")
	}
}

func TestDepthLimit(t *testing.T) {
	h := New()
	b := pixbuf.New(1, 1)

	// The first push goes over the limit first, so paint a marker into it.
	b.SetPixel(0, 0, color.RGBA{G: 255, A: 255})
	for i := 0; i < MaxDepth+1; i++ {
		h.Push(b)
		b.SetPixel(0, 0, color.RGBA{R: uint8(i), A: 255})
	}

	n := 0
	for h.Undo(b) {
		n++
	}
	if n != MaxDepth {
		t.Fatalf("undo count = %d, want %d", n, MaxDepth)
	}
	// The oldest surviving snapshot was taken after the first paint.
	if b.RGBAAt(0, 0) != (color.RGBA{R: 0, A: 255}) {
		t.Fatalf("deepest state = %v", b.RGBAAt(0, 0))
	}
}

func TestEmptyStacks(t *testing.T) {
	h := New()
	b := pixbuf.New(2, 2)
	if h.Undo(b) || h.Redo(b) {
		t.Fatal("empty history undid or redid something")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history reports available steps")
	}
}
