package app

import (
	"image/color"
	"path/filepath"
	"testing"

	"pixed/hal"
	"pixed/paint/fileio"
	"pixed/paint/pixbuf"
)

func TestNewStepRuns(t *testing.T) {
	h := hal.New(32, 32)
	step := New(h)
	for i := 0; i < 3; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestOpenProjectWiring(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scene")
	px := pixbuf.NewFilled(4, 4, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	layers := []fileio.Layer{{Name: "Layer 1", Visible: true, Pixels: px}}
	if err := fileio.SaveProject(dir, "scene", layers); err != nil {
		t.Fatalf("save project: %v", err)
	}

	h := hal.New(32, 32)
	step := NewWithConfig(h, Config{OpenProject: dir})
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	fb := h.Display().Canvas()
	if fb.Width() != 4 || fb.Height() != 4 {
		t.Fatalf("canvas = %dx%d, want 4x4", fb.Width(), fb.Height())
	}
	buf := fb.Buffer()
	if buf[0] != 10 || buf[1] != 20 || buf[2] != 30 || buf[3] != 255 {
		t.Fatalf("pixel = %v, want 10 20 30 255", buf[:4])
	}
}
