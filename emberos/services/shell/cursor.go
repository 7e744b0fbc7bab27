package shell

import "ember/emberos/proto"

// cursorTracker translates logical one-position cursor moves into the
// coprocessor's non-destructive motion bytes, handling wrap at the screen
// edge. The physical column is re-queried from the console before every
// decision: other output may have moved the cursor since the last call.
type cursorTracker struct {
	con Console
}

// moveLeft steps the cursor one position left. At column 0 it rebuilds the
// end-of-previous-row position: the protocol has no direct primitive, so it
// walks right to the last column and moves up one row.
func (t *cursorTracker) moveLeft() {
	col, known := t.con.CursorCol()
	if !known || col > 0 {
		t.con.Put(proto.TermCtrlCursorLeft)
		return
	}
	w := t.con.Cols()
	for i := 0; i < w-1; i++ {
		t.con.Put(proto.TermCtrlCursorRight)
	}
	t.con.Put(proto.TermCtrlCursorUp)
}

// moveRight steps the cursor one position right, wrapping to the start of
// the next row from the last column.
func (t *cursorTracker) moveRight() {
	col, known := t.con.CursorCol()
	w := t.con.Cols()
	if !known || col < w-1 {
		t.con.Put(proto.TermCtrlCursorRight)
		return
	}
	for i := 0; i < w-1; i++ {
		t.con.Put(proto.TermCtrlCursorLeft)
	}
	t.con.Put(proto.TermCtrlCursorDown)
}

// toStart moves from offset back to the beginning of the edited text and
// returns the new offset.
func (t *cursorTracker) toStart(offset int) int {
	for i := 0; i < offset; i++ {
		t.moveLeft()
	}
	return 0
}

// toEnd moves from offset forward to the end of the edited text and
// returns the new offset.
func (t *cursorTracker) toEnd(offset, length int) int {
	for i := offset; i < length; i++ {
		t.moveRight()
	}
	return length
}
