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

var hostKeys = []struct {
	key    ebiten.Key
	code   KeyCode
	repeat bool
}{
	{ebiten.KeyArrowUp, KeyUp, true},
	{ebiten.KeyArrowDown, KeyDown, true},
	{ebiten.KeyArrowLeft, KeyLeft, true},
	{ebiten.KeyArrowRight, KeyRight, true},
	{ebiten.KeyPageUp, KeyPageUp, true},
	{ebiten.KeyPageDown, KeyPageDown, true},
	{ebiten.KeyEnter, KeyEnter, false},
	{ebiten.KeyEscape, KeyEscape, false},
	{ebiten.KeyTab, KeyTab, false},
	{ebiten.KeyHome, KeyHome, false},
	{ebiten.KeyF1, KeyF1, false},
	{ebiten.KeyF2, KeyF2, false},
	{ebiten.KeyF3, KeyF3, false},
}

func (k *hostKeyboard) send(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	// Letter keys are text input; the OS handles their auto-repeat.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.send(KeyEvent{Press: true, Rune: r})
	}

	for _, hk := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(hk.key):
			k.send(KeyEvent{Code: hk.code, Press: true})
		case inpututil.IsKeyJustReleased(hk.key):
			k.send(KeyEvent{Code: hk.code, Press: false})
		case hk.repeat && repeatDue(inpututil.KeyPressDuration(hk.key)):
			k.send(KeyEvent{Code: hk.code, Press: true})
		}
	}
}
