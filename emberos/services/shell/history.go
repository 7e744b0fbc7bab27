package shell

// HistoryDepth is the number of remembered lines.
const HistoryDepth = 16

// HistoryStore is a fixed-depth stack of submitted lines with a browsing
// cursor decoupled from the stack itself. cursor == len(entries) means
// "not browsing" (the live line).
type HistoryStore struct {
	entries []string
	cursor  int
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{entries: make([]string, 0, HistoryDepth)}
}

// Size returns the number of stored lines.
func (h *HistoryStore) Size() int { return len(h.entries) }

// Entry returns the stored line at index i (0 = oldest).
func (h *HistoryStore) Entry(i int) string { return h.entries[i] }

// ResetCursor leaves browsing mode. Called at the start of an edit session.
func (h *HistoryStore) ResetCursor() { h.cursor = len(h.entries) }

// Push stores line unless it is empty or repeats the newest entry. At
// capacity the oldest entry is evicted. Browsing mode ends either way.
func (h *HistoryStore) Push(line string) {
	defer h.ResetCursor()
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) == HistoryDepth {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:HistoryDepth-1]
	}
	h.entries = append(h.entries, line)
}

// Up moves the browsing cursor toward older entries and returns the line
// to display. At the oldest entry it keeps returning it; with no history
// it reports no change.
func (h *HistoryStore) Up() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Down moves toward newer entries. Stepping past the newest entry returns
// cleared=true: the editor should present an empty live line. When already
// on the live line it reports no change.
func (h *HistoryStore) Down() (line string, cleared bool, ok bool) {
	switch {
	case h.cursor < len(h.entries)-1:
		h.cursor++
		return h.entries[h.cursor], false, true
	case h.cursor == len(h.entries)-1:
		h.cursor = len(h.entries)
		return "", true, true
	default:
		return "", false, false
	}
}
