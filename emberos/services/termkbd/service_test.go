package termkbd

import (
	"testing"

	"ember/emberos/proto"
	"ember/hal"
)

func TestTranslateRunes(t *testing.T) {
	pe, ok := translate(hal.KeyEvent{Press: true, Rune: 'a'})
	if !ok || pe.ASCII != 'a' || pe.VKey != proto.VKNone || !pe.Down {
		t.Fatalf("translate('a') = %+v ok=%v", pe, ok)
	}
	// Control runes pass through as their control byte.
	pe, ok = translate(hal.KeyEvent{Press: true, Rune: 0x17})
	if !ok || pe.ASCII != 0x17 {
		t.Fatalf("translate(ctrl-w) = %+v ok=%v", pe, ok)
	}
	if _, ok := translate(hal.KeyEvent{Press: true, Rune: 'é'}); ok {
		t.Fatal("non-ASCII rune should be dropped")
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	cases := []struct {
		code  hal.KeyCode
		ascii byte
		vkey  proto.VKey
	}{
		{hal.KeyEnter, 0x0D, proto.VKNone},
		{hal.KeyEscape, 0x1B, proto.VKNone},
		{hal.KeyBackspace, 0x7F, proto.VKNone},
		{hal.KeyTab, 0x09, proto.VKNone},
		{hal.KeyUp, 0, proto.VKUp},
		{hal.KeyHome, 0, proto.VKHome},
		{hal.KeyPageDown, 0, proto.VKPageDown},
		{hal.KeyF12, 0, proto.VKF12},
	}
	for _, tc := range cases {
		pe, ok := translate(hal.KeyEvent{Press: true, Code: tc.code})
		if !ok || pe.ASCII != tc.ascii || pe.VKey != tc.vkey {
			t.Errorf("translate(%v) = %+v ok=%v", tc.code, pe, ok)
		}
	}
	if _, ok := translate(hal.KeyEvent{Press: true, Code: hal.KeyUnknown}); ok {
		t.Fatal("unknown key should be dropped")
	}
}

func TestRepeatableKeys(t *testing.T) {
	if !repeatableKey(hal.KeyEvent{Code: hal.KeyLeft}) {
		t.Fatal("arrow keys repeat")
	}
	if !repeatableKey(hal.KeyEvent{Rune: 'x'}) {
		t.Fatal("text keys repeat")
	}
	if repeatableKey(hal.KeyEvent{Code: hal.KeyF1}) {
		t.Fatal("function keys must not repeat")
	}
}
