package shell

import (
	"fmt"
	"testing"
)

func TestHistoryPushSkipsEmptyAndDup(t *testing.T) {
	h := NewHistoryStore()
	h.Push("")
	h.Push("dir")
	h.Push("dir")
	if h.Size() != 1 {
		t.Fatalf("size = %d, want 1", h.Size())
	}

	// Only the newest entry blocks a duplicate.
	h.Push("cls")
	h.Push("dir")
	if h.Size() != 3 {
		t.Fatalf("size = %d, want 3", h.Size())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistoryStore()
	for i := 0; i < HistoryDepth+2; i++ {
		h.Push(fmt.Sprintf("cmd%d", i))
	}
	if h.Size() != HistoryDepth {
		t.Fatalf("size = %d, want %d", h.Size(), HistoryDepth)
	}
	if got := h.Entry(0); got != "cmd2" {
		t.Fatalf("oldest = %q, want %q", got, "cmd2")
	}
	if got := h.Entry(HistoryDepth - 1); got != fmt.Sprintf("cmd%d", HistoryDepth+1) {
		t.Fatalf("newest = %q", got)
	}
}

func TestHistoryBrowse(t *testing.T) {
	h := NewHistoryStore()
	h.Push("one")
	h.Push("two")
	h.Push("three")
	h.ResetCursor()

	for i, want := range []string{"three", "two", "one", "one"} {
		line, ok := h.Up()
		if !ok || line != want {
			t.Fatalf("Up #%d = %q/%v, want %q", i, line, ok, want)
		}
	}

	if line, cleared, ok := h.Down(); !ok || cleared || line != "two" {
		t.Fatalf("Down = %q/%v/%v", line, cleared, ok)
	}
	if line, cleared, ok := h.Down(); !ok || cleared || line != "three" {
		t.Fatalf("Down = %q/%v/%v", line, cleared, ok)
	}

	// Past the newest entry the live line comes back empty.
	if _, cleared, ok := h.Down(); !ok || !cleared {
		t.Fatalf("Down past newest: cleared=%v ok=%v", cleared, ok)
	}
	if _, _, ok := h.Down(); ok {
		t.Fatal("Down on live line reported a change")
	}
}

func TestHistoryUpEmpty(t *testing.T) {
	h := NewHistoryStore()
	if _, ok := h.Up(); ok {
		t.Fatal("Up on empty history reported a line")
	}
}

func TestHistoryPushEndsBrowsing(t *testing.T) {
	h := NewHistoryStore()
	h.Push("one")
	h.Push("two")
	h.Up()
	h.Up()
	h.Push("three")
	if line, _ := h.Up(); line != "three" {
		t.Fatalf("Up after push = %q, want %q", line, "three")
	}
}
