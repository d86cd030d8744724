// Package console renders the editor's log lines into an off-screen
// pixel strip with a small terminal emulator, so the same lines that go
// to stdout can be shown inside the window.
package console

import (
	"image/color"

	"tinygo.org/x/tinyterm"

	"pixed/paint/pixbuf"
	"pixed/paint/ui"
)

// Console is a terminal strip of fixed size. It only draws into its
// own buffer; whoever owns it composites the buffer onto the screen.
type Console struct {
	buf  *pixbuf.Buffer
	term *tinyterm.Terminal
}

// New returns a console strip of the given size.
func New(width, height int) *Console {
	c := &Console{buf: pixbuf.NewFilled(width, height, color.RGBA{A: 255})}
	c.term = tinyterm.NewTerminal(&strip{buf: c.buf})
	c.term.Configure(&tinyterm.Config{
		Font:              ui.Font,
		FontHeight:        ui.FontHeight,
		FontOffset:        ui.FontOffset,
		UseSoftwareScroll: true,
	})
	return c
}

// Buffer is the rendered strip.
func (c *Console) Buffer() *pixbuf.Buffer { return c.buf }

// WriteLine appends one line, scrolling when the strip is full.
func (c *Console) WriteLine(s string) {
	c.term.Println(s)
}
