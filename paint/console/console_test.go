package console

import (
	"image/color"
	"testing"

	"pixed/paint/pixbuf"
)

var black = color.RGBA{A: 255}

// hasInk reports whether any pixel in rows y0..y1 differs from black.
func hasInk(b *pixbuf.Buffer, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := 0; x < b.Width(); x++ {
			if b.RGBAAt(x, y) != black {
				return true
			}
		}
	}
	return false
}

func TestStripSetPixelClips(t *testing.T) {
	b := pixbuf.NewFilled(8, 8, black)
	s := &strip{buf: b}

	w, h := s.Size()
	if w != 8 || h != 8 {
		t.Fatalf("size = %dx%d", w, h)
	}

	s.SetPixel(-1, 0, color.RGBA{R: 255, A: 255})
	s.SetPixel(8, 0, color.RGBA{R: 255, A: 255})
	if hasInk(b, 0, 8) {
		t.Fatal("out-of-range SetPixel drew something")
	}
	s.SetPixel(3, 3, color.RGBA{R: 255, A: 255})
	if b.RGBAAt(3, 3) != (color.RGBA{R: 255, A: 255}) {
		t.Fatal("in-range SetPixel did not draw")
	}
}

func TestStripScrollUp(t *testing.T) {
	b := pixbuf.NewFilled(4, 6, black)
	s := &strip{buf: b}

	marker := color.RGBA{G: 255, A: 255}
	b.FillRect(0, 2, 4, 1, marker)

	if err := s.ScrollUp(2, black); err != nil {
		t.Fatalf("scroll: %v", err)
	}
	if b.RGBAAt(0, 0) != marker || b.RGBAAt(3, 0) != marker {
		t.Fatal("marker row did not shift to the top")
	}
	if hasInk(b, 1, 6) {
		t.Fatal("shifted rows and exposed band not cleared")
	}

	if err := s.ScrollUp(100, black); err != nil {
		t.Fatalf("overscroll: %v", err)
	}
	if hasInk(b, 0, 6) {
		t.Fatal("overscroll left contents behind")
	}
}

func TestWriteLinePaints(t *testing.T) {
	c := New(120, 40)
	c.WriteLine("hi")
	if !hasInk(c.Buffer(), 0, 10) {
		t.Fatal("first line band is empty")
	}
}

func TestWriteLineScrolls(t *testing.T) {
	c := New(120, 40)
	for i := 0; i < 12; i++ {
		c.WriteLine("line")
	}
	// Strip holds four lines. Each write ends in a newline, so the
	// bottom band is the cleared cursor row and the newest text sits
	// just above it.
	if !hasInk(c.Buffer(), 20, 30) {
		t.Fatal("newest line band is empty after scrolling")
	}
	if hasInk(c.Buffer(), 30, 40) {
		t.Fatal("cursor band not cleared after scrolling")
	}
	if c.Buffer().Width() != 120 || c.Buffer().Height() != 40 {
		t.Fatal("strip changed size")
	}
}
