//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	if ctrl {
		emitCtrl := func(key ebiten.Key, r rune) {
			if !inpututil.IsKeyJustPressed(key) {
				return
			}
			select {
			case k.ch <- KeyEvent{Press: true, Rune: r}:
			default:
			}
		}
		emitCtrl(ebiten.KeyE, 0x05)
		emitCtrl(ebiten.KeyI, 0x09)
		emitCtrl(ebiten.KeyO, 0x0F)
		emitCtrl(ebiten.KeyP, 0x10)
		emitCtrl(ebiten.KeyY, 0x19)
		emitCtrl(ebiten.KeyZ, 0x1A)
		return
	}

	// Physical key positions, so the bindings survive keyboard layouts.
	keymap := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyDigit1, KeyDigit1},
		{ebiten.KeyDigit2, KeyDigit2},
		{ebiten.KeyDigit3, KeyDigit3},
		{ebiten.KeyDigit4, KeyDigit4},
		{ebiten.KeyMinus, KeyMinus},
		{ebiten.KeyEqual, KeyEqual},
		{ebiten.KeyBracketLeft, KeyBracketLeft},
		{ebiten.KeyBracketRight, KeyBracketRight},
		{ebiten.KeyS, KeyS},
		{ebiten.KeyL, KeyL},
		{ebiten.KeyF1, KeyF1},
	}
	for _, m := range keymap {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			emit(m.code, false)
		}
	}
}
