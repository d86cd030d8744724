// Package brush holds the painting tool state: radius, palette color and
// the brightness factor applied on top of it.
package brush

import (
	"image/color"
	"math"

	"pixed/paint/pixbuf"
)

const (
	DefaultRadius = 6.0
	RadiusMin     = 1.0
	RadiusMax     = 64.0

	DefaultBrightness = 1.0
	BrightnessMin     = 0.3
	BrightnessMax     = 1.6
)

// Palette is the fixed set of colors offered by the color swatches.
var Palette = [8]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 128, B: 255, A: 255},
	{R: 0, G: 180, B: 0, A: 255},
	{R: 255, G: 200, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Brush stamps filled circles of a fixed radius and color.
type Brush struct {
	Radius float64
	Color  color.RGBA
}

// Stamp paints one circle centered at (x, y).
func (b Brush) Stamp(dst *pixbuf.Buffer, x, y float64) {
	dst.StampCircle(x, y, b.Radius, b.Color)
}

// Stroke paints a continuous segment by stamping along the line from
// (x0, y0) to (x1, y1) at roughly one-pixel spacing, endpoints included.
func (b Brush) Stroke(dst *pixbuf.Buffer, x0, y0, x1, y1 float64) {
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Sqrt(dx*dx + dy*dy)
	steps := int(math.Ceil(math.Max(dist, 1)))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.Stamp(dst, x0+dx*t, y0+dy*t)
	}
}

// State is the live tool configuration. Brush.Color always equals Base
// with Brightness applied, so it can be painted or previewed directly.
type State struct {
	Base       color.RGBA
	Brightness float64
	Brush      Brush
}

// NewState returns the startup configuration: black brush at the
// default radius and neutral brightness.
func NewState() *State {
	s := &State{
		Base:       Palette[0],
		Brightness: DefaultBrightness,
		Brush:      Brush{Radius: DefaultRadius},
	}
	s.apply()
	return s
}

// SetColor switches the base color, keeping the brightness factor.
func (s *State) SetColor(c color.RGBA) {
	s.Base = c
	s.apply()
}

// SetRadius sets the brush radius, clamped to the allowed range.
func (s *State) SetRadius(r float64) {
	s.Brush.Radius = math.Min(math.Max(r, RadiusMin), RadiusMax)
}

// AdjustRadius changes the radius by delta, clamped to the allowed range.
func (s *State) AdjustRadius(delta float64) {
	s.SetRadius(s.Brush.Radius + delta)
}

// SetBrightness sets the brightness factor, clamped to the allowed range,
// and recomputes the effective brush color.
func (s *State) SetBrightness(f float64) {
	s.Brightness = math.Min(math.Max(f, BrightnessMin), BrightnessMax)
	s.apply()
}

// AdjustBrightness changes the brightness factor by delta.
func (s *State) AdjustBrightness(delta float64) {
	s.SetBrightness(s.Brightness + delta)
}

func (s *State) apply() {
	s.Brush.Color = scaleRGB(s.Base, s.Brightness)
}

// scaleRGB multiplies the color channels by factor, rounding and clamping
// to 0..255. Alpha is left alone.
func scaleRGB(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: c.A,
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	return uint8(math.Min(math.Max(math.Round(float64(v)*factor), 0), 255))
}
