package shell

import "strings"

// HotkeySlots is the number of function-key macro slots (F1..F12).
const HotkeySlots = 12

// substMarker is the placeholder replaced by the current line contents
// during expansion. At most one marker is honored.
const substMarker = "%s"

// ExpandResult classifies the outcome of a hotkey expansion attempt.
type ExpandResult uint8

const (
	ExpandOK ExpandResult = iota
	// ExpandNotSet means the slot is empty; the keypress is ignored.
	ExpandNotSet
	// ExpandTooLong means the composed line would not fit the buffer; the
	// caller should sound the bell and leave the line unchanged.
	ExpandTooLong
)

// HotkeyTable holds the function-key macro strings. It is written between
// edit sessions and read during them, always from the shell task, so no
// locking is needed.
type HotkeyTable struct {
	slots [HotkeySlots]string
}

// Assign stores command in slot index (0-based), replacing any prior value.
func (t *HotkeyTable) Assign(index int, command string) {
	if index < 0 || index >= HotkeySlots {
		return
	}
	t.slots[index] = command
}

// Clear empties slot index.
func (t *HotkeyTable) Clear(index int) {
	if index < 0 || index >= HotkeySlots {
		return
	}
	t.slots[index] = ""
}

// Get returns the stored command for slot index.
func (t *HotkeyTable) Get(index int) (string, bool) {
	if index < 0 || index >= HotkeySlots || t.slots[index] == "" {
		return "", false
	}
	return t.slots[index], true
}

// Expand composes the line for slot index. Without a marker the stored
// command is returned verbatim and current is discarded; with a marker,
// current is substituted. capacity bounds the result like a LineBuffer of
// that capacity would.
func (t *HotkeyTable) Expand(index int, current string, capacity int) (string, ExpandResult) {
	stored, ok := t.Get(index)
	if !ok {
		return "", ExpandNotSet
	}

	line := stored
	if i := strings.Index(stored, substMarker); i >= 0 {
		line = stored[:i] + current + stored[i+len(substMarker):]
	}
	if len(line) > capacity-1 {
		return "", ExpandTooLong
	}
	return line, ExpandOK
}
