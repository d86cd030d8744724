package pixbuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Buffer is a tight-packed RGBA8 pixel surface: len(pix) == width*height*4,
// rows in top-to-bottom order with no stride padding. Alpha is straight
// (not premultiplied), so buffer bytes round-trip through PNG unchanged.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// White is the background every fresh surface starts from.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Transparent is the zero pixel used for overlay surfaces.
var Transparent = color.RGBA{}

// New returns a width x height buffer filled with white.
func New(width, height int) *Buffer {
	return NewFilled(width, height, White)
}

// NewFilled returns a width x height buffer filled with c.
func NewFilled(width, height int, c color.RGBA) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	b.Fill(c)
	return b
}

// FromImage copies img into a new buffer of the same size, keeping
// straight-alpha channel values byte for byte.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	b := &Buffer{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    nrgba.Pix,
	}
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bytes returns the backing pixel slice. Callers must not resize it.
func (b *Buffer) Bytes() []uint8 { return b.pix }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// SetBytes replaces the pixel contents without changing dimensions.
func (b *Buffer) SetBytes(pix []uint8) error {
	if len(pix) != len(b.pix) {
		return fmt.Errorf("pixbuf: got %d bytes, want %d", len(pix), len(b.pix))
	}
	copy(b.pix, pix)
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.RGBA) {
	for i := 0; i+3 < len(b.pix); i += 4 {
		b.pix[i] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// SetPixel writes c at (x, y); out-of-bounds writes are ignored.
func (b *Buffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// RGBAAt returns the raw channel values at (x, y) as a color.RGBA
// quadruplet, or the zero color out of bounds.
func (b *Buffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// BlendPixel alpha-blends c over the pixel at (x, y), every channel getting
// round(src*a + dst*(1-a)) with a = c.A/255. Out-of-bounds writes are ignored.
func (b *Buffer) BlendPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	a := float64(c.A) / 255
	src := [4]uint8{c.R, c.G, c.B, c.A}
	for j := 0; j < 4; j++ {
		v := float64(src[j])*a + float64(b.pix[i+j])*(1-a)
		b.pix[i+j] = uint8(math.Round(v))
	}
}

// StampCircle blends c into every pixel whose centre lies within radius of
// (cx, cy). Pixel centres are at +0.5. A radius <= 0 stamps nothing.
func (b *Buffer) StampCircle(cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	minX := int(math.Max(math.Floor(cx-radius), 0))
	maxX := int(math.Min(math.Ceil(cx+radius), float64(b.width-1)))
	minY := int(math.Max(math.Floor(cy-radius), 0))
	maxY := int(math.Min(math.Ceil(cy+radius), float64(b.height-1)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				b.BlendPixel(x, y, c)
			}
		}
	}
}

// Blit copies src onto the buffer with its top-left corner at (x, y),
// overwriting destination pixels. Parts of src falling outside the
// buffer are dropped.
func (b *Buffer) Blit(x, y int, src *Buffer) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+src.width, b.width)
	y1 := min(y+src.height, b.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	n := (x1 - x0) * 4
	for yy := y0; yy < y1; yy++ {
		di := (yy*b.width + x0) * 4
		si := ((yy-y)*src.width + (x0 - x)) * 4
		copy(b.pix[di:di+n], src.pix[si:si+n])
	}
}

// FillRect sets (not blends) the w x h rectangle at (x, y), clipped to the
// buffer.
func (b *Buffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, b.width)
	y1 := min(y+h, b.height)
	for yy := y0; yy < y1; yy++ {
		row := yy * b.width * 4
		for xx := x0; xx < x1; xx++ {
			i := row + xx*4
			b.pix[i] = c.R
			b.pix[i+1] = c.G
			b.pix[i+2] = c.B
			b.pix[i+3] = c.A
		}
	}
}

// Resize replaces the buffer with a white width x height one, copying the
// overlapping top-left region of the old contents.
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == b.width && height == b.height {
		return
	}

	pix := make([]uint8, width*height*4)
	for i := range pix {
		pix[i] = 255
	}

	rowBytes := min(width, b.width) * 4
	rows := min(height, b.height)
	for y := 0; y < rows; y++ {
		copy(pix[y*width*4:y*width*4+rowBytes], b.pix[y*b.width*4:])
	}

	b.width = width
	b.height = height
	b.pix = pix
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image, reporting pixels as straight-alpha NRGBA.
func (b *Buffer) At(x, y int) color.Color {
	c := b.RGBAAt(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
