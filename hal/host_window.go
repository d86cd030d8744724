//go:build cgo

package hal

import (
	"pixed/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the canvas and overlay
// framebuffers and forwards keyboard and pointer input.
// It blocks until the window closes.
func RunWindow(width, height int, newApp func(HAL) func() error) error {
	h := New(width, height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Pixel Editor (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error

	canvasImg  *ebiten.Image
	overlayImg *ebiten.Image
	canvasBuf  []byte
	overlayBuf []byte
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	cfb := g.h.canvas
	if g.canvasImg == nil || g.canvasImg.Bounds().Dx() != cfb.width || g.canvasImg.Bounds().Dy() != cfb.height {
		if g.canvasImg != nil {
			g.canvasImg.Deallocate()
		}
		g.canvasImg = ebiten.NewImage(cfb.width, cfb.height)
		g.canvasBuf = make([]byte, len(cfb.buf))
	}
	cfb.snapshotRGBA(g.canvasBuf)
	g.canvasImg.ReplacePixels(g.canvasBuf)

	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(sw)/float64(cfb.width), float64(sh)/float64(cfb.height))
	screen.DrawImage(g.canvasImg, op)

	ofb := g.h.overlay
	if g.overlayImg == nil || g.overlayImg.Bounds().Dx() != ofb.width || g.overlayImg.Bounds().Dy() != ofb.height {
		if g.overlayImg != nil {
			g.overlayImg.Deallocate()
		}
		g.overlayImg = ebiten.NewImage(ofb.width, ofb.height)
		g.overlayBuf = make([]byte, len(ofb.buf))
	}
	ofb.snapshotRGBA(g.overlayBuf)
	g.overlayImg.ReplacePixels(g.overlayBuf)
	screen.DrawImage(g.overlayImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.overlay.width, g.h.overlay.height
}
