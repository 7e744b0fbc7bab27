package ramfs

import (
	"errors"
	"testing"
)

func TestMkdirAndStat(t *testing.T) {
	fs := New()
	if err := fs.Mkdir("/bin"); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	info, err := fs.Stat("/bin")
	if err != nil || info.Type != TypeDir {
		t.Fatalf("stat: %+v %v", info, err)
	}
	if err := fs.Mkdir("/bin"); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if err := fs.Mkdir("/no/such/parent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("/hello.txt", []byte("hello world")); err != nil {
		t.Fatalf("write: %v", err)
	}
	buf := make([]byte, 5)
	n, eof, err := fs.ReadAt("/hello.txt", buf, 6)
	if err != nil || n != 5 || !eof || string(buf) != "world" {
		t.Fatalf("read: n=%d eof=%v err=%v buf=%q", n, eof, err, buf)
	}
	n, eof, err = fs.ReadAt("/hello.txt", buf, 100)
	if err != nil || n != 0 || !eof {
		t.Fatalf("read past end: n=%d eof=%v err=%v", n, eof, err)
	}
}

func TestAppendWriter(t *testing.T) {
	fs := New()
	if err := fs.WriteFile("/log.txt", []byte("one\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := fs.OpenWriter("/log.txt", WriteAppend)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := w.Write([]byte("two\n")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if w.BytesWritten() != 4 {
		t.Fatalf("bytes written = %d", w.BytesWritten())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	buf := make([]byte, 16)
	n, _, err := fs.ReadAt("/log.txt", buf, 0)
	if err != nil || string(buf[:n]) != "one\ntwo\n" {
		t.Fatalf("read back: %q %v", buf[:n], err)
	}
}

func TestRemoveSemantics(t *testing.T) {
	fs := New()
	if err := fs.Mkdir("/dir"); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile("/dir/a.txt", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Remove("/dir"); !errors.Is(err, ErrNotEmpty) {
		t.Fatalf("expected ErrNotEmpty, got %v", err)
	}
	if err := fs.Remove("/dir/a.txt"); err != nil {
		t.Fatalf("remove file: %v", err)
	}
	if err := fs.Remove("/dir"); err != nil {
		t.Fatalf("remove empty dir: %v", err)
	}
	if err := fs.Remove("/dir"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameMovesAcrossDirs(t *testing.T) {
	fs := New()
	if err := fs.Mkdir("/a"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Mkdir("/b"); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile("/a/f.bin", []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := fs.Rename("/a/f.bin", "/b/g.bin"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if _, err := fs.Stat("/a/f.bin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old path still present: %v", err)
	}
	info, err := fs.Stat("/b/g.bin")
	if err != nil || info.Size != 3 {
		t.Fatalf("new path: %+v %v", info, err)
	}
}

func TestListDirSortedAndEarlyStop(t *testing.T) {
	fs := New()
	for _, name := range []string{"/c.txt", "/a.txt", "/b.txt"} {
		if err := fs.WriteFile(name, nil); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	err := fs.ListDir("/", func(name string, info Info) bool {
		got = append(got, name)
		return len(got) < 2
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0] != "a.txt" || got[1] != "b.txt" {
		t.Fatalf("entries: %v", got)
	}
}

func TestPathValidation(t *testing.T) {
	fs := New()
	if _, err := fs.Stat(""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("empty path: %v", err)
	}
	if err := fs.Mkdir("/a/../b"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("dotdot path: %v", err)
	}
}
