//go:build !tinygo && !cgo

package hal

// Keyboard stub for cgo-less builds: the event channel exists so the
// termkbd service wires up normally, it just never carries anything.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {}
