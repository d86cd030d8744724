// Package ui draws the control panel overlay and resolves clicks on it.
package ui

import (
	"image/color"
	"math"

	"pixed/paint/brush"
	"pixed/paint/pixbuf"
)

// PanelWidth is the width of the control strip on the left window edge.
// Pointer-down inside the strip never paints.
const PanelWidth = 88

const (
	margin  = 6
	buttonH = 20
	gap     = 6
	sliderH = buttonH * 2
	knobH   = 6

	innerW = PanelWidth - 2*margin
	halfW  = innerW/2 - gap/2

	paletteTop = margin
	sizeRowY   = paletteTop + len(brush.Palette)*(buttonH+gap)
	canvasRowY = sizeRowY + buttonH + gap
	sliderTopY = canvasRowY + buttonH + gap
	previewY   = sliderTopY + sliderH + gap
)

var (
	panelBG  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	minusBtn = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	plusBtn  = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	smallBtn = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	largeBtn = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	trackCol = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	knobCol  = color.RGBA{R: 60, G: 60, B: 60, A: 255}

	labelDark  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	labelLight = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// HitKind says which control a click landed on.
type HitKind int

const (
	HitColor HitKind = iota + 1
	HitShrinkBrush
	HitGrowBrush
	HitShrinkCanvas
	HitGrowCanvas
	HitBrightness
)

// Hit is a resolved panel click.
type Hit struct {
	Kind       HitKind
	Color      int     // palette index, for HitColor
	Brightness float64 // slider value, for HitBrightness
}

// Panel is the control strip. Height is the window height; the strip
// runs the full left edge.
type Panel struct {
	Height int
}

// Draw paints the panel into the top-left of dst: palette swatches,
// the -/+ brush size pair, the S/L canvas size pair, the brightness
// slider and the brush preview bar.
func (p Panel) Draw(dst *pixbuf.Buffer, st *brush.State) {
	dst.FillRect(0, 0, PanelWidth, p.Height, panelBG)

	x := margin
	y := paletteTop
	for _, c := range brush.Palette {
		dst.FillRect(x, y, innerW, buttonH, c)
		y += buttonH + gap
	}

	rightX := x + innerW/2 + gap/2

	dst.FillRect(x, y, halfW, buttonH, minusBtn)
	dst.FillRect(rightX, y, halfW, buttonH, plusBtn)
	label(dst, "-", x+halfW/2, y+buttonH/2, labelDark)
	label(dst, "+", rightX+halfW/2, y+buttonH/2, labelLight)
	y += buttonH + gap

	dst.FillRect(x, y, halfW, buttonH, smallBtn)
	dst.FillRect(rightX, y, halfW, buttonH, largeBtn)
	label(dst, "S", x+halfW/2, y+buttonH/2, labelDark)
	label(dst, "L", rightX+halfW/2, y+buttonH/2, labelLight)
	y += buttonH + gap

	// Slider track with the knob at the top for maximum brightness.
	dst.FillRect(x, y, innerW, sliderH, trackCol)
	t := (st.Brightness - brush.BrightnessMin) / (brush.BrightnessMax - brush.BrightnessMin)
	t = math.Min(math.Max(t, 0), 1)
	knobY := y + int(math.Round((1-t)*float64(sliderH-knobH)))
	dst.FillRect(x+2, knobY+2, innerW-4, knobH, knobCol)
	y += sliderH + gap

	// Preview bar: width tracks the brush diameter, color is the
	// effective (brightness-adjusted) brush color.
	pw := int(math.Min(st.Brush.Radius*2, innerW))
	px := x + (innerW-pw)/2
	if pw < 4 {
		pw = 4
	}
	dst.FillRect(px, y, pw, buttonH/2, st.Brush.Color)
}

// HitTest resolves a window-space point to a panel control. The second
// return is false outside the strip and in the gaps between controls.
func (p Panel) HitTest(x, y int) (Hit, bool) {
	if x < 0 || y < 0 || x >= PanelWidth || y >= p.Height {
		return Hit{}, false
	}

	cur := paletteTop
	for i := range brush.Palette {
		if y >= cur && y < cur+buttonH {
			return Hit{Kind: HitColor, Color: i}, true
		}
		cur += buttonH + gap
	}

	relX := x - margin
	if relX < 0 {
		relX = 0
	}

	// Paired buttons keep a dead zone between the halves.
	if y >= cur && y < cur+buttonH {
		if relX < halfW {
			return Hit{Kind: HitShrinkBrush}, true
		}
		if relX >= halfW+gap {
			return Hit{Kind: HitGrowBrush}, true
		}
	}
	cur += buttonH + gap

	if y >= cur && y < cur+buttonH {
		if relX < halfW {
			return Hit{Kind: HitShrinkCanvas}, true
		}
		if relX >= halfW+gap {
			return Hit{Kind: HitGrowCanvas}, true
		}
	}
	cur += buttonH + gap

	if y >= cur && y < cur+sliderH {
		return Hit{Kind: HitBrightness, Brightness: p.BrightnessAt(y)}, true
	}

	return Hit{}, false
}

// BrightnessAt maps a window y to a slider value, top of the track
// being the maximum. Ends clamp, so drags may overshoot the track.
func (p Panel) BrightnessAt(y int) float64 {
	rel := float64(y-sliderTopY) / sliderH
	rel = math.Min(math.Max(rel, 0), 1)
	return brush.BrightnessMax - rel*(brush.BrightnessMax-brush.BrightnessMin)
}
