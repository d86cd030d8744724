package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	canvas  *hostFramebuffer
	overlay *hostFramebuffer
	kbd     *hostKeyboard
	ptr     *hostPointer
	dlg     Dialogs
}

// New returns a host HAL implementation with a width x height canvas and a
// window-sized overlay of the same dimensions.
func New(width, height int) HAL {
	return &hostHAL{
		logger:  &hostLogger{w: os.Stdout},
		canvas:  newHostFramebuffer(width, height),
		overlay: newHostFramebuffer(width, height),
		kbd:     newHostKeyboard(),
		ptr:     newHostPointer(),
		dlg:     hostDialogs{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input     { return hostInput{h: h} }
func (h *hostHAL) Dialogs() Dialogs { return h.dlg }

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Canvas() Framebuffer  { return d.h.canvas }
func (d hostDisplay) Overlay() Framebuffer { return d.h.overlay }

type hostInput struct {
	h *hostHAL
}

func (in hostInput) Keyboard() Keyboard { return in.h.kbd }
func (in hostInput) Pointer() Pointer   { return in.h.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
