//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch    chan PointerEvent
	lastX int
	lastY int
	moved bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 128)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) poll() {
	emit := func(kind PointerKind, x, y int) {
		select {
		case p.ch <- PointerEvent{Kind: kind, X: x, Y: y}:
		default:
		}
	}

	x, y := ebiten.CursorPosition()
	if !p.moved || x != p.lastX || y != p.lastY {
		p.lastX = x
		p.lastY = y
		p.moved = true
		emit(PointerMove, x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		emit(PointerDown, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		emit(PointerUp, x, y)
	}
}
