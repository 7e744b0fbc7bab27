package term

import "ember/emberos/proto"

// cell is one character cell: a byte from the wire plus its foreground
// color index at the time it was written.
type cell struct {
	ch byte
	fg uint8
}

const defaultFG = 15

// screen is the character grid state machine behind the term service. It
// interprets the coprocessor byte protocol and keeps the live cursor
// position; it knows nothing about pixels.
type screen struct {
	cols, rows int
	cells      []cell
	col, row   int
	fg         uint8

	// pendingColor is set after TermCtrlColor until the index byte arrives.
	pendingColor bool
	bell         bool
}

func newScreen(cols, rows int) *screen {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &screen{cols: cols, rows: rows, fg: defaultFG}
	s.cells = make([]cell, cols*rows)
	s.clear()
	return s
}

func (s *screen) clear() {
	for i := range s.cells {
		s.cells[i] = cell{ch: ' ', fg: s.fg}
	}
	s.col, s.row = 0, 0
}

func (s *screen) at(col, row int) cell {
	return s.cells[row*s.cols+col]
}

func (s *screen) scrollUp() {
	copy(s.cells, s.cells[s.cols:])
	tail := s.cells[(s.rows-1)*s.cols:]
	for i := range tail {
		tail[i] = cell{ch: ' ', fg: s.fg}
	}
}

func (s *screen) lineFeed() {
	s.row++
	if s.row >= s.rows {
		s.row = s.rows - 1
		s.scrollUp()
	}
}

// putByte feeds one wire byte into the grid.
func (s *screen) putByte(b byte) {
	if s.pendingColor {
		s.pendingColor = false
		s.fg = b & 0x0F
		return
	}

	switch {
	case b >= 0x20 && b != 0x7F:
		s.cells[s.row*s.cols+s.col] = cell{ch: b, fg: s.fg}
		s.col++
		if s.col >= s.cols {
			s.col = 0
			s.lineFeed()
		}

	case b == proto.TermCtrlBell:
		s.bell = true

	case b == proto.TermCtrlCursorLeft:
		if s.col > 0 {
			s.col--
		} else if s.row > 0 {
			s.row--
			s.col = s.cols - 1
		}

	case b == proto.TermCtrlCursorRight:
		s.col++
		if s.col >= s.cols {
			s.col = 0
			s.lineFeed()
		}

	case b == proto.TermCtrlCursorDown:
		s.lineFeed()

	case b == proto.TermCtrlCursorUp:
		if s.row > 0 {
			s.row--
		}

	case b == proto.TermCtrlCR:
		s.col = 0

	case b == proto.TermCtrlClear:
		s.clear()

	case b == proto.TermCtrlColor:
		s.pendingColor = true
	}
}

func (s *screen) put(p []byte) {
	for _, b := range p {
		s.putByte(b)
	}
}

// takeBell reports and clears the pending bell flag.
func (s *screen) takeBell() bool {
	b := s.bell
	s.bell = false
	return b
}
