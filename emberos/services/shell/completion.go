package shell

import (
	"sort"
	"strings"

	"ember/emberos/proto"
)

// Directories searched for executables in COMMAND-mode completion, after
// the current directory.
var binSearchDirs = []string{"/mos", "/bin"}

const (
	binSuffix = ".bin"

	// Color indices used in the show-all listing.
	dirColorIndex     = 0x02
	defaultColorIndex = 0x0F
)

// tabContext is the per-attempt completion state: the typed word portion,
// the running common-prefix accumulator and, in show-all mode, the full
// candidate list for rendering.
type tabContext struct {
	typed   string
	accum   string
	matches int
	lastDir bool

	collect    bool
	candidates []FoundEntry
	longest    int
}

// add folds one discovered candidate into the attempt. The first candidate
// seeds the accumulator with its suffix beyond the typed portion; later
// ones truncate it to the shared case-insensitive prefix. The first
// candidate's original case survives in the emitted text.
func (t *tabContext) add(name string, dir bool) {
	suffix := name[len(t.typed):]
	if t.matches == 0 {
		t.accum = suffix
	} else {
		t.accum = commonPrefixFold(t.accum, suffix)
	}
	t.matches++
	t.lastDir = dir

	if t.collect {
		t.candidates = append(t.candidates, FoundEntry{Name: name, Dir: dir})
		if len(name) > t.longest {
			t.longest = len(name)
		}
	}
}

// complete runs one Tab press: pick the completion mode, enumerate
// candidates, then either insert the common prefix, arm show-all mode, or
// (second Tab) render the full listing.
func (e *Editor) complete(buf *LineBuffer, pos int, prompt string) int {
	line := buf.String()[:pos]
	showAll := e.showAllArmed
	e.showAllArmed = false

	tc := &tabContext{collect: showAll}

	trimmed := strings.TrimLeft(line, " ")
	pathStart := len(trimmed) > 0 && (trimmed[0] == '.' || trimmed[0] == '/')

	if pathStart || strings.ContainsRune(line, ' ') {
		// ARGUMENT mode: complete the path word anchored at the last space.
		word := line[strings.LastIndexByte(line, ' ')+1:]
		if strings.ContainsAny(word, "*?") {
			// Wildcard words pass through untouched.
			return pos
		}
		dirPart, filePart := "", word
		if i := strings.LastIndexByte(word, '/'); i >= 0 {
			dirPart, filePart = word[:i+1], word[i+1:]
		}
		tc.typed = filePart
		if filePart == "." || filePart == ".." {
			// Dot words have no directory entries; offer the parent
			// reference directly.
			tc.add("..", true)
		} else {
			e.scanDir(tc, resolvePath(e.cwd(), dirPart), filePart+"*", false)
		}
	} else {
		// COMMAND mode: internal commands plus *.bin executables.
		tc.typed = trimmed
		if e.commands != nil {
			for _, name := range e.commands.CommandNames() {
				if hasPrefixFold(name, trimmed) {
					tc.add(name, false)
				}
			}
		}
		cwd := e.cwd()
		e.scanDir(tc, cwd, trimmed+"*"+binSuffix, true)
		for _, d := range binSearchDirs {
			if d != cwd {
				e.scanDir(tc, d, trimmed+"*"+binSuffix, true)
			}
		}
	}

	if tc.matches == 0 {
		return pos
	}

	if showAll {
		pos = e.renderAll(tc, buf, pos, prompt)
		// The listing resolved nothing; keep listing on further Tabs.
		if tc.matches > 1 && tc.accum == "" {
			e.showAllArmed = true
		}
		return pos
	}

	if tc.matches == 1 || tc.accum != "" {
		for i := 0; i < len(tc.accum); i++ {
			pos = e.insertEcho(buf, pos, tc.accum[i])
		}
		if tc.matches == 1 {
			if tc.lastDir {
				pos = e.insertEcho(buf, pos, '/')
			} else {
				pos = e.insertEcho(buf, pos, ' ')
			}
		}
		return pos
	}

	// Ambiguous with zero progress: the next Tab lists everything.
	e.showAllArmed = true
	return pos
}

// scanDir feeds glob matches from one directory into the attempt. With
// stripBin set, directory entries are skipped and the executable suffix is
// removed from candidate names.
func (e *Editor) scanDir(tc *tabContext, dir, pattern string, stripBin bool) {
	if e.fs == nil {
		return
	}
	ent, ok := e.fs.FindFirst(dir, pattern)
	for ok {
		if stripBin {
			if !ent.Dir {
				tc.add(trimSuffixFold(ent.Name, binSuffix), false)
			}
		} else {
			tc.add(ent.Name, ent.Dir)
		}
		ent, ok = e.fs.FindNext()
	}
}

// renderAll prints the candidate listing, directories first in their own
// color, in columns sized to the longest name, then redraws the command
// line beneath it.
func (e *Editor) renderAll(tc *tabContext, buf *LineBuffer, pos int, prompt string) int {
	sort.SliceStable(tc.candidates, func(i, j int) bool {
		a, b := tc.candidates[i], tc.candidates[j]
		if a.Dir != b.Dir {
			return a.Dir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	colW := tc.longest + 1
	perRow := e.con.Cols() / colW
	if perRow < 1 {
		perRow = 1
	}

	e.con.WriteString("\r\n")
	for i, c := range tc.candidates {
		if c.Dir {
			e.con.Put(proto.TermCtrlColor)
			e.con.Put(dirColorIndex)
		}
		e.con.WriteString(c.Name)
		if c.Dir {
			e.con.Put(proto.TermCtrlColor)
			e.con.Put(defaultColorIndex)
		}
		if (i+1)%perRow == 0 || i == len(tc.candidates)-1 {
			e.con.WriteString("\r\n")
		} else {
			for p := len(c.Name); p < colW; p++ {
				e.con.Put(' ')
			}
		}
	}

	e.con.WriteString(prompt)
	e.con.WriteString(buf.String())
	for i := pos; i < buf.Len(); i++ {
		e.t.moveLeft()
	}
	return pos
}
