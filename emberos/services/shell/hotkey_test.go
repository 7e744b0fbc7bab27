package shell

import "testing"

func TestHotkeyExpandVerbatim(t *testing.T) {
	var tbl HotkeyTable
	tbl.Assign(0, "dir /bin")
	line, res := tbl.Expand(0, "ignored", 64)
	if res != ExpandOK || line != "dir /bin" {
		t.Fatalf("got %q/%v", line, res)
	}
}

func TestHotkeyExpandSubstitution(t *testing.T) {
	var tbl HotkeyTable
	tbl.Assign(2, "run %s.bin")
	line, res := tbl.Expand(2, "TEST", 64)
	if res != ExpandOK || line != "run TEST.bin" {
		t.Fatalf("got %q/%v", line, res)
	}
}

func TestHotkeyExpandNotSet(t *testing.T) {
	var tbl HotkeyTable
	if _, res := tbl.Expand(5, "x", 64); res != ExpandNotSet {
		t.Fatalf("got %v, want ExpandNotSet", res)
	}
	if _, res := tbl.Expand(-1, "x", 64); res != ExpandNotSet {
		t.Fatalf("bad index: got %v, want ExpandNotSet", res)
	}
}

func TestHotkeyExpandTooLong(t *testing.T) {
	var tbl HotkeyTable
	tbl.Assign(0, "echo %s")
	if _, res := tbl.Expand(0, "1234567", 12); res != ExpandTooLong {
		t.Fatalf("got %v, want ExpandTooLong", res)
	}
	// Exactly capacity-1 still fits.
	if line, res := tbl.Expand(0, "123456", 12); res != ExpandOK || line != "echo 123456" {
		t.Fatalf("got %q/%v", line, res)
	}
}

func TestHotkeyClear(t *testing.T) {
	var tbl HotkeyTable
	tbl.Assign(3, "cls")
	tbl.Clear(3)
	if _, ok := tbl.Get(3); ok {
		t.Fatal("slot still set after Clear")
	}
}
