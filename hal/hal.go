package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrCanceled reports that the user dismissed a dialog without choosing.
var ErrCanceled = errors.New("canceled")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp: one byte each of r, g, b, a per pixel.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGBA(r, g, b, a uint8)
	// Resize replaces the buffer with a freshly sized, cleared one.
	Resize(width, height int)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyS
	KeyL
	KeyF1
)

// KeyEvent is a keyboard event.
//
// Ctrl chords arrive as Rune events carrying the control character
// (Ctrl+E => 0x05), the way terminals encode them.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind identifies what a pointer event reports.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerDown
	PointerUp
)

// PointerEvent is a mouse event for the primary button, in window coordinates.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides the two presentation surfaces.
//
// Canvas holds the painted pixels and is drawn stretched to the window;
// Overlay is window-sized and drawn on top with alpha.
type Display interface {
	Canvas() Framebuffer
	Overlay() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Dialogs invokes the platform's modal file pickers.
//
// Each call blocks until the user chooses or cancels; cancellation is
// reported as ErrCanceled.
type Dialogs interface {
	OpenImage() (string, error)
	SaveImage(name string) (string, error)
	PickFolder() (string, error)
}

// HAL provides the only contact point between the editor and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Dialogs() Dialogs
}
