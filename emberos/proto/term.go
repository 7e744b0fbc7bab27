package proto

import "encoding/binary"

// Terminal control bytes understood by the term service.
//
// The display coprocessor protocol uses non-destructive cursor moves:
// CursorRight is a plain move, not a tab stop.
const (
	TermCtrlBell        = 0x07
	TermCtrlCursorLeft  = 0x08
	TermCtrlCursorRight = 0x09
	TermCtrlCursorDown  = 0x0A
	TermCtrlCursorUp    = 0x0B
	TermCtrlClear       = 0x0C
	TermCtrlCR          = 0x0D
	TermCtrlColor       = 0x11 // followed by one color index byte
)

// TermCursorRespPayload encodes a MsgTermCursorResp response.
//
// Layout (little-endian):
//   - u16: column
//   - u16: row
//   - u8: known flag (0 if the position could not be determined)
func TermCursorRespPayload(col, row int, known bool) []byte {
	buf := make([]byte, 5)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(col))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(row))
	if known {
		buf[4] = 1
	}
	return buf
}

func DecodeTermCursorRespPayload(b []byte) (col, row int, known bool, ok bool) {
	if len(b) != 5 {
		return 0, 0, false, false
	}
	col = int(binary.LittleEndian.Uint16(b[0:2]))
	row = int(binary.LittleEndian.Uint16(b[2:4]))
	return col, row, b[4] != 0, true
}

// TermSizeRespPayload encodes a MsgTermSizeResp response.
//
// Layout (little-endian):
//   - u16: columns
//   - u16: rows
func TermSizeRespPayload(cols, rows int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(cols))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(rows))
	return buf
}

func DecodeTermSizeRespPayload(b []byte) (cols, rows int, ok bool) {
	if len(b) != 4 {
		return 0, 0, false
	}
	return int(binary.LittleEndian.Uint16(b[0:2])), int(binary.LittleEndian.Uint16(b[2:4])), true
}
