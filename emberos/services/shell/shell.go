// Package shell is the resident command shell: a line editor with history,
// hotkey macros and tab completion, plus the built-in command table it
// dispatches to.
//
// The editor talks to its collaborators through small package-local
// interfaces so the whole editing core runs against fakes in tests; the
// IPC-backed implementations live next to the service wiring.
package shell

import "ember/emberos/proto"

// Console is the terminal output seam. CursorCol performs a live query of
// the display coprocessor; the result is never cached across calls.
type Console interface {
	Put(b byte)
	WriteString(s string)
	CursorCol() (col int, known bool)
	Cols() int
}

// KeySource delivers keyboard key-down events. WaitKeyDown blocks; it is
// the editor's sole suspension point.
type KeySource interface {
	WaitKeyDown() (proto.KeyEvent, bool)
}

// FoundEntry is one filesystem match from a Finder scan.
type FoundEntry struct {
	Name string
	Dir  bool
}

// Finder is the filesystem seam used by tab completion: glob-driven
// find-first/find-next over one directory at a time.
type Finder interface {
	FindFirst(dir, pattern string) (FoundEntry, bool)
	FindNext() (FoundEntry, bool)
}

// CommandLister exposes the ordered command table for COMMAND-mode
// completion.
type CommandLister interface {
	CommandNames() []string
}
