package tinyterm

import "image/color"

// Color identifies one of the basic ANSI terminal colors.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colors = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0xff, 0x00, 0x00, 0xff}, // red
	{0x00, 0xff, 0x00, 0xff}, // green
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0xff, 0x00, 0xff, 0xff}, // magenta
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0xff, 0xff, 0xff}, // white
}

// SGR parameter codes handled by selectGraphicRendition.
const (
	SGRReset          = 0
	SGRBold           = 1
	SGRFgBlack        = 30
	SGRFgRed          = 31
	SGRFgGreen        = 32
	SGRFgYellow       = 33
	SGRFgBlue         = 34
	SGRFgMagenta      = 35
	SGRFgCyan         = 36
	SGRFgWhite        = 37
	SGRSetFgColor     = 38
	SGRDefaultFgColor = 39
	SGRBgBlack        = 40
	SGRBgRed          = 41
	SGRBgGreen        = 42
	SGRBgYellow       = 43
	SGRBgBlue         = 44
	SGRBgMagenta      = 45
	SGRBgCyan         = 46
	SGRBgWhite        = 47
	SGRSetBgColor     = 48
	SGRDefaultBgColor = 49
)

type sgrAttrs struct {
	attrs byte
	fgcol color.RGBA
	bgcol color.RGBA
}

func (a *sgrAttrs) reset() {
	a.attrs = 0
	a.fgcol = colors[ColorWhite]
	a.bgcol = colors[ColorBlack]
}

func (a *sgrAttrs) setFG(c Color) {
	if int(c) < len(colors) {
		a.fgcol = colors[c]
	}
}

func (a *sgrAttrs) setBG(c Color) {
	if int(c) < len(colors) {
		a.bgcol = colors[c]
	}
}
