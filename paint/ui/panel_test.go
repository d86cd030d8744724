package ui

import (
	"math"
	"testing"

	"pixed/paint/brush"
	"pixed/paint/pixbuf"
)

func TestHitTestControls(t *testing.T) {
	p := Panel{Height: 600}

	cases := []struct {
		name  string
		x, y  int
		kind  HitKind
		color int
		ok    bool
	}{
		{"first swatch", 10, paletteTop, HitColor, 0, true},
		{"first swatch bottom", 10, paletteTop + buttonH - 1, HitColor, 0, true},
		{"gap between swatches", 10, paletteTop + buttonH, 0, 0, false},
		{"second swatch", 10, paletteTop + buttonH + gap, HitColor, 1, true},
		{"last swatch", 10, paletteTop + 7*(buttonH+gap) + 5, HitColor, 7, true},

		{"shrink brush", 10, sizeRowY + 5, HitShrinkBrush, 0, true},
		{"shrink brush left margin", 2, sizeRowY + 5, HitShrinkBrush, 0, true},
		{"shrink brush right edge", margin + halfW - 1, sizeRowY + 5, HitShrinkBrush, 0, true},
		{"size dead zone left", margin + halfW, sizeRowY + 5, 0, 0, false},
		{"size dead zone right", margin + halfW + gap - 1, sizeRowY + 5, 0, 0, false},
		{"grow brush", margin + halfW + gap, sizeRowY + 5, HitGrowBrush, 0, true},
		{"grow brush far right", PanelWidth - 1, sizeRowY + 5, HitGrowBrush, 0, true},

		{"shrink canvas", 10, canvasRowY + 5, HitShrinkCanvas, 0, true},
		{"grow canvas", 50, canvasRowY + 5, HitGrowCanvas, 0, true},

		{"slider top", 10, sliderTopY, HitBrightness, 0, true},
		{"slider bottom", 10, sliderTopY + sliderH - 1, HitBrightness, 0, true},
		{"below slider", 10, sliderTopY + sliderH, 0, 0, false},
		{"preview bar", 10, previewY + 2, 0, 0, false},

		{"right of strip", PanelWidth, 100, 0, 0, false},
		{"below panel", 10, 600, 0, 0, false},
		{"negative", -1, 10, 0, 0, false},
	}
	for _, tc := range cases {
		hit, ok := p.HitTest(tc.x, tc.y)
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if hit.Kind != tc.kind {
			t.Fatalf("%s: kind = %v, want %v", tc.name, hit.Kind, tc.kind)
		}
		if hit.Kind == HitColor && hit.Color != tc.color {
			t.Fatalf("%s: color = %d, want %d", tc.name, hit.Color, tc.color)
		}
	}
}

func TestBrightnessMapping(t *testing.T) {
	p := Panel{Height: 600}

	if got := p.BrightnessAt(sliderTopY); got != brush.BrightnessMax {
		t.Fatalf("top = %v, want %v", got, brush.BrightnessMax)
	}
	mid := p.BrightnessAt(sliderTopY + sliderH/2)
	if math.Abs(mid-0.95) > 1e-9 {
		t.Fatalf("mid = %v, want 0.95", mid)
	}
	if got := p.BrightnessAt(-100); got != brush.BrightnessMax {
		t.Fatalf("overshoot above = %v", got)
	}
	if got := p.BrightnessAt(10000); math.Abs(got-brush.BrightnessMin) > 1e-9 {
		t.Fatalf("overshoot below = %v", got)
	}

	hit, ok := p.HitTest(10, sliderTopY)
	if !ok || hit.Kind != HitBrightness || hit.Brightness != brush.BrightnessMax {
		t.Fatalf("slider hit = %+v, %v", hit, ok)
	}
}

func TestDrawStaysInStrip(t *testing.T) {
	dst := pixbuf.NewFilled(200, 400, pixbuf.Transparent)
	p := Panel{Height: 400}
	st := brush.NewState()
	st.SetBrightness(brush.BrightnessMax)
	p.Draw(dst, st)

	if dst.RGBAAt(0, 0) != panelBG || dst.RGBAAt(PanelWidth-1, 399) != panelBG {
		t.Fatal("strip background not filled")
	}
	if dst.RGBAAt(PanelWidth, 0) != pixbuf.Transparent || dst.RGBAAt(150, 200) != pixbuf.Transparent {
		t.Fatal("draw leaked past the strip")
	}

	if dst.RGBAAt(margin, paletteTop) != brush.Palette[0] {
		t.Fatalf("swatch 0 = %v", dst.RGBAAt(margin, paletteTop))
	}
	if dst.RGBAAt(margin+innerW-1, paletteTop) != brush.Palette[0] {
		t.Fatal("swatch does not span the inner width")
	}
	if dst.RGBAAt(margin+innerW, paletteTop) != panelBG {
		t.Fatal("swatch overran the inner width")
	}

	// At maximum brightness the knob sits at the top of the track.
	if dst.RGBAAt(10, sliderTopY+3) != knobCol {
		t.Fatalf("knob pixel = %v", dst.RGBAAt(10, sliderTopY+3))
	}

	// Default radius 6 gives a 12 wide centered preview bar.
	px := margin + (innerW-12)/2
	if dst.RGBAAt(px, previewY+2) != st.Brush.Color {
		t.Fatalf("preview pixel = %v", dst.RGBAAt(px, previewY+2))
	}
	if dst.RGBAAt(px-2, previewY+2) != panelBG {
		t.Fatal("preview bar too wide")
	}
}
