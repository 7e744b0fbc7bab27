package shell

import "ember/emberos/proto"

// Options controls one EditLine session.
type Options struct {
	// Clear empties the buffer on entry; otherwise the pre-filled contents
	// are echoed and editing resumes at the end.
	Clear   bool
	Tab     bool
	Hotkeys bool
	History bool
	// Prompt is what precedes the edited text on screen; the editor needs
	// it only to redraw the line after a completion listing.
	Prompt string
}

const (
	keyEnter  = 0x0D
	keyEscape = 0x1B
	keyTab    = 0x09
)

// Editor is the line-editing event loop. It owns the cursor tracker and is
// the only component that writes to the console during a session; history,
// hotkeys and completion mutate the buffer through its helpers.
type Editor struct {
	con      Console
	keys     KeySource
	fs       Finder
	commands CommandLister
	history  *HistoryStore
	hotkeys  *HotkeyTable
	cwd      func() string

	t cursorTracker

	// showAllArmed is set after an ambiguous zero-progress Tab and reset
	// by any non-Tab key; the next Tab renders the full candidate list,
	// and further Tabs keep listing while the word stays ambiguous.
	showAllArmed bool
}

func NewEditor(
	con Console,
	keys KeySource,
	fs Finder,
	commands CommandLister,
	history *HistoryStore,
	hotkeys *HotkeyTable,
	cwd func() string,
) *Editor {
	if cwd == nil {
		cwd = func() string { return "/" }
	}
	return &Editor{
		con:      con,
		keys:     keys,
		fs:       fs,
		commands: commands,
		history:  history,
		hotkeys:  hotkeys,
		cwd:      cwd,
		t:        cursorTracker{con: con},
	}
}

// EditLine runs the editing loop until Enter or Escape and returns the exit
// key. The final text is left in buf; the screen cursor ends past the last
// character.
func (e *Editor) EditLine(buf *LineBuffer, opts Options) byte {
	if opts.Clear {
		buf.Clear()
	} else if buf.Len() > 0 {
		e.con.WriteString(buf.String())
	}
	pos := buf.Len()
	if e.history != nil {
		e.history.ResetCursor()
	}
	e.showAllArmed = false

	for {
		ev, ok := e.keys.WaitKeyDown()
		if !ok {
			e.t.toEnd(pos, buf.Len())
			return keyEscape
		}

		key, fslot := resolveKey(ev)
		if key != keyTab {
			e.showAllArmed = false
		}

		if key >= 0x20 && key != 0x7F {
			pos = e.insertEcho(buf, pos, key)
			continue
		}

		switch key {
		case 0x01: // Ctrl-A / Home
			pos = e.t.toStart(pos)
		case 0x05: // Ctrl-E / End
			pos = e.t.toEnd(pos, buf.Len())
		case 0x02: // Ctrl-B / Left
			if pos > 0 {
				e.t.moveLeft()
				pos--
			}
		case 0x06, 0x15: // Ctrl-F, Ctrl-U / Right
			if pos < buf.Len() {
				e.t.moveRight()
				pos++
			}
		case 0x08, 0x7F: // Backspace
			pos = e.backspace(buf, pos)
		case 0x17: // Ctrl-W
			pos = e.deleteWord(buf, pos)
		case keyTab:
			if opts.Tab {
				pos = e.complete(buf, pos, opts.Prompt)
			}
		case 0x0B, 0x10: // Up / Ctrl-P
			if opts.History {
				pos = e.historyUp(buf, pos)
			}
		case 0x0A, 0x0E: // Down / Ctrl-N
			if opts.History {
				pos = e.historyDown(buf, pos)
			}
		case keyEnter:
			if opts.History && e.history != nil {
				e.history.Push(buf.String())
			}
			e.t.toEnd(pos, buf.Len())
			return keyEnter
		case keyEscape:
			e.t.toEnd(pos, buf.Len())
			return keyEscape
		case 0:
			if fslot >= 0 && opts.Hotkeys {
				entered, newPos := e.expandHotkey(buf, pos, fslot, opts)
				pos = newPos
				if entered {
					return keyEnter
				}
			}
		}
	}
}

// resolveKey maps a key event to the editor's control-byte vocabulary.
// Function keys come back as fslot >= 0 instead.
func resolveKey(ev proto.KeyEvent) (key byte, fslot int) {
	if ev.ASCII != 0 {
		return ev.ASCII, -1
	}
	switch ev.VKey {
	case proto.VKHome:
		return 0x01, -1
	case proto.VKEnd:
		return 0x05, -1
	case proto.VKLeft:
		return 0x02, -1
	case proto.VKRight:
		return 0x06, -1
	case proto.VKUp:
		return 0x0B, -1
	case proto.VKDown:
		return 0x0A, -1
	case proto.VKPageUp:
		return 0x10, -1
	case proto.VKPageDown:
		return 0x0E, -1
	}
	if ev.VKey >= proto.VKF1 && ev.VKey <= proto.VKF12 {
		return 0, int(ev.VKey - proto.VKF1)
	}
	return 0, -1
}

// insertEcho inserts c at pos, echoes it together with the shifted tail
// and walks the cursor back behind the new character. A full buffer is a
// silent no-op.
func (e *Editor) insertEcho(buf *LineBuffer, pos int, c byte) int {
	if !buf.Insert(pos, c) {
		return pos
	}
	e.con.WriteString(buf.String()[pos:])
	for i := pos + 1; i < buf.Len(); i++ {
		e.t.moveLeft()
	}
	return pos + 1
}

func (e *Editor) backspace(buf *LineBuffer, pos int) int {
	if !buf.DeleteBefore(pos) {
		return pos
	}
	pos--
	e.t.moveLeft()
	tail := buf.String()[pos:]
	e.con.WriteString(tail)
	e.con.Put(' ')
	for i := 0; i < len(tail)+1; i++ {
		e.t.moveLeft()
	}
	return pos
}

func (e *Editor) deleteWord(buf *LineBuffer, pos int) int {
	n := buf.DeleteWordBefore(pos)
	if n == 0 {
		return pos
	}
	pos -= n
	for i := 0; i < n; i++ {
		e.t.moveLeft()
	}
	tail := buf.String()[pos:]
	e.con.WriteString(tail)
	for i := 0; i < n; i++ {
		e.con.Put(' ')
	}
	for i := 0; i < len(tail)+n; i++ {
		e.t.moveLeft()
	}
	return pos
}

// replaceLine clears the displayed line in place, swaps in line and leaves
// the cursor at its end.
func (e *Editor) replaceLine(buf *LineBuffer, pos int, line string) int {
	pos = e.t.toStart(pos)
	old := buf.Len()
	for i := 0; i < old; i++ {
		e.con.Put(' ')
	}
	for i := 0; i < old; i++ {
		e.t.moveLeft()
	}
	buf.Set(line)
	e.con.WriteString(buf.String())
	return buf.Len()
}

func (e *Editor) historyUp(buf *LineBuffer, pos int) int {
	if e.history == nil {
		return pos
	}
	line, ok := e.history.Up()
	if !ok || line == buf.String() {
		return pos
	}
	return e.replaceLine(buf, pos, line)
}

func (e *Editor) historyDown(buf *LineBuffer, pos int) int {
	if e.history == nil {
		return pos
	}
	line, _, ok := e.history.Down()
	if !ok || line == buf.String() {
		return pos
	}
	return e.replaceLine(buf, pos, line)
}

// expandHotkey swaps the expanded macro into the line and synthesizes
// Enter. Too-long expansions ring the bell and leave the line alone.
func (e *Editor) expandHotkey(buf *LineBuffer, pos, slot int, opts Options) (entered bool, newPos int) {
	if e.hotkeys == nil {
		return false, pos
	}
	line, res := e.hotkeys.Expand(slot, buf.String(), buf.Cap())
	switch res {
	case ExpandNotSet:
		return false, pos
	case ExpandTooLong:
		e.con.Put(proto.TermCtrlBell)
		return false, pos
	}
	pos = e.replaceLine(buf, pos, line)
	if opts.History && e.history != nil {
		e.history.Push(buf.String())
	}
	return true, pos
}
