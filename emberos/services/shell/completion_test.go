package shell

import (
	"strings"
	"testing"
)

func newTestEditor(con *fakeConsole, fs Finder, names []string, cwd string) *Editor {
	return NewEditor(con, &fakeKeys{}, fs, &fakeLister{names: names}, NewHistoryStore(), &HotkeyTable{}, func() string { return cwd })
}

func typeLine(e *Editor, buf *LineBuffer, s string) int {
	pos := 0
	for i := 0; i < len(s); i++ {
		pos = e.insertEcho(buf, pos, s[i])
	}
	return pos
}

func TestCompleteAmbiguousZeroProgressArmsShowAll(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, []string{"CD", "CLS", "COPY"}, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "C")
	con.reset()

	newPos := e.complete(buf, pos, ">")
	if newPos != pos || buf.String() != "C" {
		t.Fatalf("line changed: %q pos %d", buf.String(), newPos)
	}
	if len(con.out) != 0 {
		t.Fatalf("emitted % x", con.out)
	}
	if !e.showAllArmed {
		t.Fatal("show-all not armed")
	}
}

func TestCompleteCommonPrefix(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, []string{"CLS", "CLEAR"}, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "c")

	pos = e.complete(buf, pos, ">")
	if got := buf.String(); got != "cL" {
		t.Fatalf("got %q, want %q", got, "cL")
	}
	if pos != 2 {
		t.Fatalf("pos = %d", pos)
	}
	if e.showAllArmed {
		t.Fatal("show-all armed after progress")
	}
}

func TestCompleteUniqueCommandAppendsSpace(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, []string{"DIR", "CLS"}, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "d")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "dIR " {
		t.Fatalf("got %q, want %q", got, "dIR ")
	}
}

func TestCompleteBinaryScanStripsSuffix(t *testing.T) {
	con := newFakeConsole(80)
	fs := &fakeFinder{dirs: map[string][]FoundEntry{
		"/mos": {{Name: "GAME.BIN"}, {Name: "saves", Dir: true}},
	}}
	e := newTestEditor(con, fs, nil, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "ga")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "gaME " {
		t.Fatalf("got %q, want %q", got, "gaME ")
	}
}

func TestCompleteArgumentDirectory(t *testing.T) {
	con := newFakeConsole(80)
	fs := &fakeFinder{dirs: map[string][]FoundEntry{
		"/": {{Name: "home", Dir: true}, {Name: "boot.cfg"}},
	}}
	e := newTestEditor(con, fs, []string{"CD"}, "/tmp")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "cd /h")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "cd /home/" {
		t.Fatalf("got %q, want %q", got, "cd /home/")
	}
}

func TestCompleteArgumentFileAppendsSpace(t *testing.T) {
	con := newFakeConsole(80)
	fs := &fakeFinder{dirs: map[string][]FoundEntry{
		"/tmp": {{Name: "notes.txt"}},
	}}
	e := newTestEditor(con, fs, nil, "/tmp")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "type no")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "type notes.txt " {
		t.Fatalf("got %q, want %q", got, "type notes.txt ")
	}
}

func TestCompleteWildcardIsNoOp(t *testing.T) {
	con := newFakeConsole(80)
	fs := &fakeFinder{dirs: map[string][]FoundEntry{
		"/": {{Name: "boot.cfg"}},
	}}
	e := newTestEditor(con, fs, nil, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "dir *.b")
	con.reset()

	newPos := e.complete(buf, pos, ">")
	if newPos != pos || buf.String() != "dir *.b" || len(con.out) != 0 {
		t.Fatalf("line %q pos %d out % x", buf.String(), newPos, con.out)
	}
}

func TestCompleteNoMatches(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, []string{"DIR"}, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "zz")
	con.reset()

	newPos := e.complete(buf, pos, ">")
	if newPos != pos || len(con.out) != 0 || e.showAllArmed {
		t.Fatalf("pos %d out % x armed %v", newPos, con.out, e.showAllArmed)
	}
}

func TestCompleteListingDirectoriesFirst(t *testing.T) {
	con := newFakeConsole(80)
	fs := &fakeFinder{dirs: map[string][]FoundEntry{
		"/": {
			{Name: "app.cfg"},
			{Name: "bin", Dir: true},
			{Name: "boot.log"},
			{Name: "archive", Dir: true},
		},
	}}
	e := newTestEditor(con, fs, nil, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "dir /")

	pos = e.complete(buf, pos, ">")
	if !e.showAllArmed {
		t.Fatal("show-all not armed")
	}
	con.reset()
	e.complete(buf, pos, ">")

	out := con.String()
	order := []string{"archive", "bin", "app.cfg", "boot.log"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		if i < 0 {
			t.Fatalf("listing missing %q: %q", name, out)
		}
		if i < last {
			t.Fatalf("%q listed out of order: %q", name, out)
		}
		last = i
	}
	// Directory names are wrapped in colour-select sequences.
	if !strings.Contains(out, string([]byte{0x11, dirColorIndex})+"archive") {
		t.Fatalf("directory not coloured: %q", out)
	}
}

func TestCompleteSecondTabListsAll(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, []string{"CD", "CLS", "COPY"}, "/")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "C")

	pos = e.complete(buf, pos, ">")
	if !e.showAllArmed {
		t.Fatal("show-all not armed")
	}
	con.reset()

	newPos := e.complete(buf, pos, ">")
	out := con.String()
	for _, name := range []string{"CD", "CLS", "COPY"} {
		if !strings.Contains(out, name) {
			t.Fatalf("listing missing %q: %q", name, out)
		}
	}
	if !strings.Contains(out, ">C") {
		t.Fatalf("prompt not redrawn: %q", out)
	}
	if newPos != pos || buf.String() != "C" {
		t.Fatalf("line changed: %q pos %d", buf.String(), newPos)
	}
	if !e.showAllArmed {
		t.Fatal("show-all disarmed while still ambiguous")
	}

	// With no progress made, a third Tab lists again.
	con.reset()
	e.complete(buf, newPos, ">")
	if out := con.String(); !strings.Contains(out, "COPY") {
		t.Fatalf("third Tab did not list: %q", out)
	}
}

func TestCompleteDotWordSuggestsParent(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, nil, "/home")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "cd .")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "cd ../" {
		t.Fatalf("got %q, want %q", got, "cd ../")
	}
}

func TestCompleteDotDotWordAppendsSlash(t *testing.T) {
	con := newFakeConsole(80)
	e := newTestEditor(con, &fakeFinder{}, nil, "/home")
	buf := NewLineBuffer(64)
	pos := typeLine(e, buf, "cd ..")

	e.complete(buf, pos, ">")
	if got := buf.String(); got != "cd ../" {
		t.Fatalf("got %q, want %q", got, "cd ../")
	}
}
