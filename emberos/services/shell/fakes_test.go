package shell

import (
	"strings"

	"ember/emberos/proto"
)

// fakeConsole models the coprocessor cursor just enough for the tracker:
// it applies motion bytes to a column counter and records everything
// written.
type fakeConsole struct {
	cols  int
	col   int
	known bool
	out   []byte
}

func newFakeConsole(cols int) *fakeConsole {
	return &fakeConsole{cols: cols, known: true}
}

func (c *fakeConsole) Put(b byte) {
	c.out = append(c.out, b)
	switch b {
	case proto.TermCtrlCursorLeft:
		if c.col > 0 {
			c.col--
		}
	case proto.TermCtrlCursorRight:
		c.col++
		if c.col >= c.cols {
			c.col = 0
		}
	case proto.TermCtrlCursorUp, proto.TermCtrlCursorDown, proto.TermCtrlBell:
	case proto.TermCtrlCR:
		c.col = 0
	default:
		if b >= 0x20 && b != 0x7F {
			c.col++
			if c.col >= c.cols {
				c.col = 0
			}
		}
	}
}

func (c *fakeConsole) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		c.Put(s[i])
	}
}

func (c *fakeConsole) CursorCol() (int, bool) { return c.col, c.known }

func (c *fakeConsole) Cols() int { return c.cols }

func (c *fakeConsole) String() string { return string(c.out) }

func (c *fakeConsole) reset() { c.out = nil }

// fakeKeys replays a scripted key sequence.
type fakeKeys struct {
	events []proto.KeyEvent
}

func (k *fakeKeys) WaitKeyDown() (proto.KeyEvent, bool) {
	if len(k.events) == 0 {
		return proto.KeyEvent{}, false
	}
	ev := k.events[0]
	k.events = k.events[1:]
	return ev, true
}

func (k *fakeKeys) pressASCII(s string) {
	for i := 0; i < len(s); i++ {
		k.events = append(k.events, proto.KeyEvent{ASCII: s[i], Down: true})
	}
}

func (k *fakeKeys) pressVKey(v proto.VKey) {
	k.events = append(k.events, proto.KeyEvent{VKey: v, Down: true})
}

// fakeFinder serves glob scans from a static dir -> entries map. Patterns
// are the simple prefix*suffix shapes the completion engine emits.
type fakeFinder struct {
	dirs map[string][]FoundEntry

	pending []FoundEntry
}

func (f *fakeFinder) FindFirst(dir, pattern string) (FoundEntry, bool) {
	f.pending = nil
	for _, e := range f.dirs[dir] {
		if matchSimple(pattern, e.Name) {
			f.pending = append(f.pending, e)
		}
	}
	return f.FindNext()
}

func (f *fakeFinder) FindNext() (FoundEntry, bool) {
	if len(f.pending) == 0 {
		return FoundEntry{}, false
	}
	e := f.pending[0]
	f.pending = f.pending[1:]
	return e, true
}

func matchSimple(pattern, name string) bool {
	i := strings.IndexByte(pattern, '*')
	if i < 0 {
		return strings.EqualFold(pattern, name)
	}
	prefix, suffix := pattern[:i], pattern[i+1:]
	if len(name) < len(prefix)+len(suffix) {
		return false
	}
	return hasPrefixFold(name, prefix) && hasSuffixFold(name, suffix)
}

type fakeLister struct {
	names []string
}

func (l *fakeLister) CommandNames() []string { return l.names }
