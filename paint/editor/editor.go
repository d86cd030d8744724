// Package editor is the event loop of the pixel editor: it owns the
// canvas, brush, history and panel, translates keyboard and pointer
// events into state changes or file operations, and composes the two
// presentation surfaces every frame.
package editor

import (
	"math"

	"pixed/hal"
	"pixed/paint/brush"
	"pixed/paint/console"
	"pixed/paint/history"
	"pixed/paint/pixbuf"
	"pixed/paint/ui"
)

// Mode is the editor's event-loop state.
type Mode uint8

const (
	// ModeIdle is the resting state between interactions.
	ModeIdle Mode = iota
	// ModePainting is active while the pointer is held on the canvas.
	ModePainting
	// ModeDialog is active while a modal file picker is open.
	ModeDialog
)

// Ctrl chords arrive as control characters from the keyboard source.
const (
	chordExport = 0x05 // Ctrl+E
	chordImport = 0x09 // Ctrl+I
	chordOpen   = 0x0F // Ctrl+O
	chordSave   = 0x10 // Ctrl+P
	chordRedo   = 0x19 // Ctrl+Y
	chordUndo   = 0x1A // Ctrl+Z
)

// Canvas scale factors bound to the S/L keys and panel buttons.
const (
	canvasShrink = 0.75
	canvasGrow   = 1.25
)

// Config carries the startup options.
type Config struct {
	// ScaleImports rescales mismatched imported images to the canvas
	// instead of rejecting them.
	ScaleImports bool
	// OpenProject is a project folder to load before the first frame.
	OpenProject string
}

// Editor runs the pixel editor on top of a HAL's surfaces and inputs.
// All methods must be called from the loop driving Step.
type Editor struct {
	log  hal.Logger
	disp hal.Display
	dlg  hal.Dialogs

	keys <-chan hal.KeyEvent
	ptr  <-chan hal.PointerEvent

	canvas  *pixbuf.Buffer
	overlay *pixbuf.Buffer
	state   *brush.State
	hist    *history.History
	panel   ui.Panel
	console *console.Console

	mode        Mode
	lastX       float64
	lastY       float64
	haveLast    bool
	sliderDrag  bool
	consoleOpen bool

	scaleImports bool

	winW int
	winH int
}

// New builds an editor over the given HAL pieces. The canvas starts at
// the display's canvas size, white; the window size is fixed at the
// overlay's size for the editor's lifetime.
func New(log hal.Logger, disp hal.Display, in hal.Input, dlg hal.Dialogs, cfg Config) *Editor {
	winW := disp.Overlay().Width()
	winH := disp.Overlay().Height()

	e := &Editor{
		log:          log,
		disp:         disp,
		dlg:          dlg,
		canvas:       pixbuf.New(disp.Canvas().Width(), disp.Canvas().Height()),
		overlay:      pixbuf.NewFilled(winW, winH, pixbuf.Transparent),
		state:        brush.NewState(),
		hist:         history.New(),
		panel:        ui.Panel{Height: winH},
		console:      console.New(winW, consoleHeight),
		scaleImports: cfg.ScaleImports,
		winW:         winW,
		winH:         winH,
	}

	if in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			e.keys = kbd.Events()
		}
		if p := in.Pointer(); p != nil {
			e.ptr = p.Events()
		}
	}

	if cfg.OpenProject != "" {
		e.loadProjectFrom(cfg.OpenProject)
	}
	return e
}

// Mode reports the current event-loop mode.
func (e *Editor) Mode() Mode { return e.mode }

// Step processes all pending input events and redraws. The host loop
// calls it once per frame; dialog hotkeys block inside it until the
// picker returns.
func (e *Editor) Step() error {
	e.drainKeys()
	e.drainPointer()
	e.render()
	return nil
}

func (e *Editor) drainKeys() {
	if e.keys == nil {
		return
	}
	for {
		select {
		case ev := <-e.keys:
			e.handleKey(ev)
		default:
			return
		}
	}
}

func (e *Editor) drainPointer() {
	if e.ptr == nil {
		return
	}
	for {
		select {
		case ev := <-e.ptr:
			e.handlePointer(ev)
		default:
			return
		}
	}
}

func (e *Editor) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if ev.Rune != 0 {
		e.handleChord(ev.Rune)
		return
	}

	switch ev.Code {
	case hal.KeyDigit1:
		e.state.SetColor(brush.Palette[0])
	case hal.KeyDigit2:
		e.state.SetColor(brush.Palette[1])
	case hal.KeyDigit3:
		e.state.SetColor(brush.Palette[2])
	case hal.KeyDigit4:
		e.state.SetColor(brush.Palette[3])
	case hal.KeyMinus:
		e.state.AdjustRadius(-1)
	case hal.KeyEqual:
		e.state.AdjustRadius(1)
	case hal.KeyBracketLeft:
		e.state.AdjustRadius(-2)
	case hal.KeyBracketRight:
		e.state.AdjustRadius(2)
	case hal.KeyS:
		e.scaleCanvas(canvasShrink)
	case hal.KeyL:
		e.scaleCanvas(canvasGrow)
	case hal.KeyF1:
		e.consoleOpen = !e.consoleOpen
	}
}

func (e *Editor) handleChord(r rune) {
	switch r {
	case chordExport:
		e.exportPNG()
	case chordImport:
		e.importImage()
	case chordOpen:
		e.loadProject()
	case chordSave:
		e.saveProject()
	case chordUndo:
		e.hist.Undo(e.canvas)
	case chordRedo:
		e.hist.Redo(e.canvas)
	}
}

func (e *Editor) handlePointer(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerDown:
		e.pointerDown(ev.X, ev.Y)
	case hal.PointerMove:
		e.pointerMove(ev.X, ev.Y)
	case hal.PointerUp:
		e.pointerUp()
	}
}

// pointerDown either operates a panel control or begins a stroke.
// Presses inside the panel strip never paint, even between controls.
func (e *Editor) pointerDown(x, y int) {
	if hit, ok := e.panel.HitTest(x, y); ok {
		e.applyHit(hit)
		return
	}
	if x < ui.PanelWidth {
		return
	}

	e.hist.Push(e.canvas)
	e.mode = ModePainting
	cx, cy := e.toCanvas(x, y)
	e.state.Brush.Stamp(e.canvas, cx, cy)
	e.lastX, e.lastY = cx, cy
	e.haveLast = true
}

func (e *Editor) pointerMove(x, y int) {
	if e.sliderDrag {
		e.state.SetBrightness(e.panel.BrightnessAt(y))
		return
	}
	if e.mode != ModePainting {
		return
	}
	if x < ui.PanelWidth {
		e.stopStroke()
		return
	}

	cx, cy := e.toCanvas(x, y)
	if e.haveLast {
		e.state.Brush.Stroke(e.canvas, e.lastX, e.lastY, cx, cy)
	} else {
		e.state.Brush.Stamp(e.canvas, cx, cy)
	}
	e.lastX, e.lastY = cx, cy
	e.haveLast = true
}

func (e *Editor) pointerUp() {
	e.stopStroke()
	e.sliderDrag = false
}

func (e *Editor) stopStroke() {
	e.mode = ModeIdle
	e.haveLast = false
}

func (e *Editor) applyHit(h ui.Hit) {
	switch h.Kind {
	case ui.HitColor:
		e.state.SetColor(brush.Palette[h.Color])
	case ui.HitShrinkBrush:
		e.state.AdjustRadius(-2)
	case ui.HitGrowBrush:
		e.state.AdjustRadius(2)
	case ui.HitShrinkCanvas:
		e.scaleCanvas(canvasShrink)
	case ui.HitGrowCanvas:
		e.scaleCanvas(canvasGrow)
	case ui.HitBrightness:
		e.state.SetBrightness(h.Brightness)
		e.sliderDrag = true
	}
}

// scaleCanvas resizes the canvas by factor, keeping the overlapping
// top-left contents. The window keeps its size; the on-screen stretch
// factor changes instead.
func (e *Editor) scaleCanvas(factor float64) {
	w := int(math.Round(float64(e.canvas.Width()) * factor))
	h := int(math.Round(float64(e.canvas.Height()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == e.canvas.Width() && h == e.canvas.Height() {
		return
	}
	e.hist.Push(e.canvas)
	e.canvas.Resize(w, h)
}

// toCanvas maps a window position to canvas coordinates, clamped to
// the canvas extent.
func (e *Editor) toCanvas(x, y int) (float64, float64) {
	cx := float64(x) * float64(e.canvas.Width()) / float64(e.winW)
	cy := float64(y) * float64(e.canvas.Height()) / float64(e.winH)
	cx = math.Min(math.Max(cx, 0), float64(e.canvas.Width()-1))
	cy = math.Min(math.Max(cy, 0), float64(e.canvas.Height()-1))
	return cx, cy
}
