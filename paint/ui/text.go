package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"pixed/paint/pixbuf"
)

// Font is the typeface for panel labels and the console.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// FontHeight and FontOffset are the line metrics matching Font.
const (
	FontHeight = 10
	FontOffset = 6
)

const labelAscent = 7

// bufDisplayer lets tinyfont and tinyterm render straight into a pixel
// buffer.
type bufDisplayer struct {
	b *pixbuf.Buffer
}

func (d bufDisplayer) Size() (int16, int16) {
	return int16(d.b.Width()), int16(d.b.Height())
}

func (d bufDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.b.SetPixel(int(x), int(y), c)
}

func (d bufDisplayer) Display() error { return nil }

// label draws s centered on (cx, cy).
func label(dst *pixbuf.Buffer, s string, cx, cy int, c color.RGBA) {
	_, w := tinyfont.LineWidth(Font, s)
	x := cx - int(w)/2
	baseline := cy + labelAscent/2
	tinyfont.WriteLine(bufDisplayer{dst}, Font, int16(x), int16(baseline), s, c)
}
