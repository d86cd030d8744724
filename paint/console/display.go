package console

import (
	"image/color"

	"tinygo.org/x/drivers"

	"pixed/paint/pixbuf"
)

// strip adapts a pixel buffer to tinyterm's display interface. All
// drawing lands in the buffer; nothing is presented from here.
type strip struct {
	buf *pixbuf.Buffer
}

func (s *strip) Size() (int16, int16) {
	return int16(s.buf.Width()), int16(s.buf.Height())
}

func (s *strip) SetPixel(x, y int16, c color.RGBA) {
	s.buf.SetPixel(int(x), int(y), c)
}

func (s *strip) Display() error { return nil }

func (s *strip) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	s.buf.FillRect(int(x), int(y), int(width), int(height), c)
	return nil
}

// SetScroll is hardware scrolling, which a plain pixel buffer has none
// of. The terminal runs with software scrolling instead.
func (s *strip) SetScroll(line int16) {}

func (s *strip) SetRotation(drivers.Rotation) error { return nil }

// ScrollUp shifts the strip contents up by the given pixel count and
// clears the exposed band at the bottom.
func (s *strip) ScrollUp(pixels int16, bg color.RGBA) error {
	n := int(pixels)
	w, h := s.buf.Width(), s.buf.Height()
	if n <= 0 {
		return nil
	}
	if n >= h {
		s.buf.Fill(bg)
		return nil
	}
	row := w * 4
	pix := s.buf.Bytes()
	copy(pix, pix[n*row:])
	s.buf.FillRect(0, h-n, w, n, bg)
	return nil
}
