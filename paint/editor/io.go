package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"pixed/hal"
	"pixed/paint/fileio"
)

// Every file operation ends in exactly one log line: ✓ on success, ✗
// on failure or cancellation. The same line goes to the logger and the
// in-window console, and a failed operation leaves the canvas as it was.

func (e *Editor) logLine(s string) {
	if e.log != nil {
		e.log.WriteLineString(s)
	}
	e.console.WriteLine(s)
}

func (e *Editor) logf(format string, args ...any) {
	e.logLine(fmt.Sprintf(format, args...))
}

// dialogFailed logs a dismissed or broken dialog. Cancellation is a
// no-op outcome, not an error; it gets the fixed message for the
// dialog's kind.
func (e *Editor) dialogFailed(err error, cancelMsg string) {
	if errors.Is(err, hal.ErrCanceled) {
		e.logLine("✗ " + cancelMsg)
		return
	}
	e.logf("✗ %v", err)
}

func (e *Editor) opFailed(err error) {
	var sm *fileio.SizeMismatchError
	if errors.As(err, &sm) {
		e.logf("✗ Image size (%dx%d) doesn't match canvas (%dx%d)",
			sm.ImageWidth, sm.ImageHeight, sm.CanvasWidth, sm.CanvasHeight)
		return
	}
	e.logf("✗ %v", err)
}

func (e *Editor) exportPNG() {
	e.mode = ModeDialog
	path, err := e.dlg.SaveImage("export.png")
	e.mode = ModeIdle
	if err != nil {
		e.dialogFailed(err, "No file selected")
		return
	}

	if err := fileio.ExportPNG(path, e.canvas); err != nil {
		e.opFailed(err)
		return
	}
	e.logf("✓ Exported PNG: %s", path)
}

func (e *Editor) importImage() {
	e.mode = ModeDialog
	path, err := e.dlg.OpenImage()
	e.mode = ModeIdle
	if err != nil {
		e.dialogFailed(err, "No file selected")
		return
	}

	load := fileio.ImportImage
	if e.scaleImports {
		load = fileio.ImportImageScaled
	}
	buf, err := load(path, e.canvas.Width(), e.canvas.Height())
	if err != nil {
		e.opFailed(err)
		return
	}
	e.hist.Push(e.canvas)
	e.canvas = buf
	e.logf("✓ Imported image: %s", path)
}

// saveProject writes the canvas as a one-layer project into a chosen
// folder. The folder's base name becomes the project name.
func (e *Editor) saveProject() {
	e.mode = ModeDialog
	dir, err := e.dlg.PickFolder()
	e.mode = ModeIdle
	if err != nil {
		e.dialogFailed(err, "No folder selected")
		return
	}

	layers := []fileio.Layer{{Name: "Layer 1", Visible: true, Pixels: e.canvas}}
	if err := fileio.SaveProject(dir, filepath.Base(dir), layers); err != nil {
		e.opFailed(err)
		return
	}
	e.logf("✓ Saved project: %s", dir)
}

func (e *Editor) loadProject() {
	e.mode = ModeDialog
	dir, err := e.dlg.PickFolder()
	e.mode = ModeIdle
	if err != nil {
		e.dialogFailed(err, "No folder selected")
		return
	}
	e.loadProjectFrom(dir)
}

// loadProjectFrom loads the project in dir, flattens its visible
// layers and installs the result as the canvas. Shared by the Ctrl+O
// flow and the open-on-start path.
func (e *Editor) loadProjectFrom(dir string) {
	p, layers, err := fileio.LoadProject(dir)
	if err != nil {
		e.opFailed(err)
		return
	}
	e.hist.Push(e.canvas)
	e.canvas = fileio.Composite(p.Width, p.Height, layers)
	e.logf("✓ Loaded project: %s (%dx%d)", p.Name, p.Width, p.Height)
}
