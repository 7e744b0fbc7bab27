//go:build !tinygo && cgo

package hal

import "testing"

// The line editor understands these control runes; the host keyboard must
// be able to produce every one of them.
func TestCtrlKeysCoverEditorRunes(t *testing.T) {
	want := []rune{
		0x01, // Ctrl-A home
		0x02, // Ctrl-B left
		0x05, // Ctrl-E end
		0x06, // Ctrl-F right
		0x08, // Ctrl-H backspace
		0x0E, // Ctrl-N history down
		0x10, // Ctrl-P history up
		0x15, // Ctrl-U right
		0x17, // Ctrl-W delete word
	}

	have := map[rune]bool{}
	for _, c := range ctrlKeys {
		if have[c.r] {
			t.Errorf("control rune %#02x mapped twice", c.r)
		}
		have[c.r] = true
	}
	for _, r := range want {
		if !have[r] {
			t.Errorf("control rune %#02x has no key mapping", r)
		}
	}
}
