package fileio

import "fmt"

// IOError reports a filesystem failure during an export, import or
// project operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports undecodable image data or malformed project metadata.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Path, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// SizeMismatchError reports an image whose dimensions differ from the
// canvas that was supposed to receive it.
type SizeMismatchError struct {
	ImageWidth   int
	ImageHeight  int
	CanvasWidth  int
	CanvasHeight int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("image size (%dx%d) doesn't match canvas (%dx%d)",
		e.ImageWidth, e.ImageHeight, e.CanvasWidth, e.CanvasHeight)
}
