package shell

import "testing"

func TestLineBufferInsert(t *testing.T) {
	b := NewLineBuffer(8)
	for i, c := range []byte("abc") {
		if !b.Insert(i, c) {
			t.Fatalf("Insert(%d) failed", i)
		}
	}
	if !b.Insert(1, 'X') {
		t.Fatal("mid insert failed")
	}
	if got := b.String(); got != "aXbc" {
		t.Fatalf("got %q, want %q", got, "aXbc")
	}
}

func TestLineBufferFull(t *testing.T) {
	b := NewLineBuffer(4)
	b.Set("abc")
	if b.Insert(3, 'd') {
		t.Fatal("insert into full buffer succeeded")
	}
	if got := b.String(); got != "abc" {
		t.Fatalf("buffer changed: %q", got)
	}
}

func TestLineBufferInsertBadIndex(t *testing.T) {
	b := NewLineBuffer(8)
	b.Set("ab")
	if b.Insert(3, 'x') || b.Insert(-1, 'x') {
		t.Fatal("out-of-range insert succeeded")
	}
}

func TestLineBufferDeleteBefore(t *testing.T) {
	b := NewLineBuffer(8)
	b.Set("abcd")
	if !b.DeleteBefore(2) {
		t.Fatal("DeleteBefore failed")
	}
	if got := b.String(); got != "acd" {
		t.Fatalf("got %q, want %q", got, "acd")
	}
	if b.DeleteBefore(0) {
		t.Fatal("DeleteBefore(0) succeeded")
	}
}

func TestLineBufferDeleteWordBefore(t *testing.T) {
	b := NewLineBuffer(32)
	b.Set("copy a.txt  ")
	if n := b.DeleteWordBefore(b.Len()); n != len("a.txt  ") {
		t.Fatalf("removed %d bytes", n)
	}
	if got := b.String(); got != "copy " {
		t.Fatalf("got %q, want %q", got, "copy ")
	}

	b.Set("word")
	if n := b.DeleteWordBefore(4); n != 4 {
		t.Fatalf("removed %d bytes", n)
	}
	if b.Len() != 0 {
		t.Fatalf("buffer not empty: %q", b.String())
	}
	if n := b.DeleteWordBefore(0); n != 0 {
		t.Fatalf("removed %d bytes from empty buffer", n)
	}
}

func TestLineBufferSetTruncates(t *testing.T) {
	b := NewLineBuffer(4)
	b.Set("abcdef")
	if got := b.String(); got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}
