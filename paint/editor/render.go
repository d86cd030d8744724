package editor

import (
	"pixed/paint/pixbuf"
	"pixed/paint/ui"
)

// The console strip sits at the bottom of the window when open.
const (
	consoleLines  = 5
	consoleHeight = consoleLines * ui.FontHeight
)

// render uploads the canvas and recomposes the overlay. The canvas
// surface is replaced whole every frame; the window draws it stretched,
// so the panel and console never appear in exported pixels.
func (e *Editor) render() {
	cfb := e.disp.Canvas()
	if cfb.Width() != e.canvas.Width() || cfb.Height() != e.canvas.Height() {
		cfb.Resize(e.canvas.Width(), e.canvas.Height())
	}
	copy(cfb.Buffer(), e.canvas.Bytes())
	_ = cfb.Present()

	e.overlay.Fill(pixbuf.Transparent)
	e.panel.Draw(e.overlay, e.state)
	if e.consoleOpen {
		e.overlay.Blit(0, e.winH-consoleHeight, e.console.Buffer())
	}

	ofb := e.disp.Overlay()
	copy(ofb.Buffer(), e.overlay.Bytes())
	_ = ofb.Present()
}
