//go:build !tinygo && cgo

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

var navKeys = []struct {
	eb   ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeyF1, KeyF1},
	{ebiten.KeyF2, KeyF2},
	{ebiten.KeyF3, KeyF3},
	{ebiten.KeyF4, KeyF4},
	{ebiten.KeyF5, KeyF5},
	{ebiten.KeyF6, KeyF6},
	{ebiten.KeyF7, KeyF7},
	{ebiten.KeyF8, KeyF8},
	{ebiten.KeyF9, KeyF9},
	{ebiten.KeyF10, KeyF10},
	{ebiten.KeyF11, KeyF11},
	{ebiten.KeyF12, KeyF12},
}

// Ctrl-letter combinations delivered as control runes.
var ctrlKeys = []struct {
	eb ebiten.Key
	r  rune
}{
	{ebiten.KeyA, 0x01},
	{ebiten.KeyB, 0x02},
	{ebiten.KeyC, 0x03},
	{ebiten.KeyE, 0x05},
	{ebiten.KeyF, 0x06},
	{ebiten.KeyG, 0x07},
	{ebiten.KeyH, 0x08},
	{ebiten.KeyN, 0x0E},
	{ebiten.KeyP, 0x10},
	{ebiten.KeyU, 0x15},
	{ebiten.KeyW, 0x17},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	if ctrl {
		for _, c := range ctrlKeys {
			if inpututil.IsKeyJustPressed(c.eb) {
				emit(KeyEvent{Press: true, Rune: c.r})
			}
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			emit(KeyEvent{Press: true, Rune: r})
		}
	}

	// Navigation and function keys; letter keys are treated as text input.
	for _, n := range navKeys {
		if inpututil.IsKeyJustPressed(n.eb) {
			emit(KeyEvent{Code: n.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(n.eb) {
			emit(KeyEvent{Code: n.code, Press: false})
		}
	}
}
