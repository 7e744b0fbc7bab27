package proto

// VKey identifies a non-ASCII virtual key in a MsgKeyEvent payload.
type VKey uint8

const (
	VKNone VKey = iota
	VKHome
	VKEnd
	VKPageUp
	VKPageDown
	VKLeft
	VKRight
	VKUp
	VKDown
	VKDelete
	VKF1
	VKF2
	VKF3
	VKF4
	VKF5
	VKF6
	VKF7
	VKF8
	VKF9
	VKF10
	VKF11
	VKF12
)

// Key modifier bits in a MsgKeyEvent payload.
const (
	ModCtrl uint8 = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is one decoded keyboard event.
type KeyEvent struct {
	ASCII byte
	Mods  uint8
	VKey  VKey
	Down  bool
}

// KeyEventPayload encodes a MsgKeyEvent payload.
//
// Layout:
//   - u8: ASCII code (0 if none)
//   - u8: modifier bits
//   - u8: virtual key (VKey)
//   - u8: key-down flag (0/1)
func KeyEventPayload(ev KeyEvent) []byte {
	buf := make([]byte, 4)
	buf[0] = ev.ASCII
	buf[1] = ev.Mods
	buf[2] = uint8(ev.VKey)
	if ev.Down {
		buf[3] = 1
	}
	return buf
}

func DecodeKeyEventPayload(b []byte) (KeyEvent, bool) {
	if len(b) != 4 {
		return KeyEvent{}, false
	}
	return KeyEvent{
		ASCII: b[0],
		Mods:  b[1],
		VKey:  VKey(b[2]),
		Down:  b[3] != 0,
	}, true
}
