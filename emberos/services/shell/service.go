package shell

import (
	loggerclient "ember/emberos/client/logger"
	termclient "ember/emberos/client/term"
	timeclient "ember/emberos/client/time"
	vfsclient "ember/emberos/client/vfs"
	"ember/emberos/kernel"
	"ember/emberos/proto"
)

// lineCapacity is the edit buffer size; lines keep at most capacity-1
// characters.
const lineCapacity = 256

// fallbackCols is used when the terminal size query fails.
const fallbackCols = 80

// Service is the interactive shell task. Keys is the receive capability of
// the endpoint the keyboard service posts MsgKeyEvent to.
type Service struct {
	Keys kernel.Capability
	Term kernel.Capability
	VFS  kernel.Capability
	Time kernel.Capability
	Log  kernel.Capability
}

func (s *Service) Run(ctx *kernel.Context) {
	keyCh, ok := ctx.RecvChan(s.Keys)
	if !ok {
		loggerclient.Log(ctx, s.Log, "shell: no key endpoint")
		return
	}

	term := termclient.New(s.Term)
	fs := vfsclient.New(s.VFS)
	var clock *timeclient.Client
	if s.Time.Valid() {
		clock = timeclient.New(s.Time)
	}

	con := &ipcConsole{ctx: ctx, term: term}
	keys := &ipcKeys{ch: keyCh}
	finder := &ipcFinder{ctx: ctx, fs: fs}

	sess := newSession(ctx, con, term, fs, clock)
	ed := NewEditor(con, keys, finder, sess.reg, sess.history, sess.hotkeys, sess.Cwd)
	buf := NewLineBuffer(lineCapacity)

	loggerclient.Log(ctx, s.Log, "shell: ready")
	con.WriteString("EmberOS shell\r\ntype HELP for commands\r\n")

	for {
		// The coprocessor may change fonts or modes between lines; re-query
		// the width for every edit session.
		con.invalidateSize()

		prompt := sess.cwd + ">"
		con.WriteString(prompt)

		key := ed.EditLine(buf, Options{
			Clear:   true,
			Tab:     true,
			Hotkeys: true,
			History: true,
			Prompt:  prompt,
		})
		con.WriteString("\r\n")

		if keys.closed {
			loggerclient.Log(ctx, s.Log, "shell: key source closed")
			return
		}
		if key == keyEnter {
			sess.dispatch(buf.String())
		}
	}
}

// ipcConsole adapts the terminal client to the editor's Console seam. The
// column count is cached per edit session; the cursor position never is.
type ipcConsole struct {
	ctx  *kernel.Context
	term *termclient.Client
	cols int
}

func (c *ipcConsole) Put(b byte) {
	c.term.Put(c.ctx, b)
}

func (c *ipcConsole) WriteString(s string) {
	c.term.WriteString(c.ctx, s)
}

func (c *ipcConsole) CursorCol() (int, bool) {
	col, _, known := c.term.Cursor(c.ctx)
	return col, known
}

func (c *ipcConsole) Cols() int {
	if c.cols > 0 {
		return c.cols
	}
	cols, _, ok := c.term.Size(c.ctx)
	if !ok || cols <= 0 {
		return fallbackCols
	}
	c.cols = cols
	return cols
}

// invalidateSize drops the cached column count so the next Cols call
// re-queries the terminal.
func (c *ipcConsole) invalidateSize() { c.cols = 0 }

// ipcKeys adapts the key event endpoint to the editor's KeySource seam,
// filtering to key-down events.
type ipcKeys struct {
	ch     <-chan kernel.Message
	closed bool
}

func (k *ipcKeys) WaitKeyDown() (proto.KeyEvent, bool) {
	for {
		msg, ok := <-k.ch
		if !ok {
			k.closed = true
			return proto.KeyEvent{}, false
		}
		if proto.Kind(msg.Kind) != proto.MsgKeyEvent {
			continue
		}
		ev, ok := proto.DecodeKeyEventPayload(msg.Payload())
		if !ok || !ev.Down {
			continue
		}
		return ev, true
	}
}

// ipcFinder adapts the filesystem client to the completion engine's Finder
// seam.
type ipcFinder struct {
	ctx *kernel.Context
	fs  *vfsclient.Client
}

func (f *ipcFinder) FindFirst(dir, pattern string) (FoundEntry, bool) {
	e, ok := f.fs.FindFirst(f.ctx, dir, pattern)
	if !ok {
		return FoundEntry{}, false
	}
	return FoundEntry{Name: e.Name, Dir: e.Type == proto.VFSEntryDir}, true
}

func (f *ipcFinder) FindNext() (FoundEntry, bool) {
	e, ok := f.fs.FindNext()
	if !ok {
		return FoundEntry{}, false
	}
	return FoundEntry{Name: e.Name, Dir: e.Type == proto.VFSEntryDir}, true
}
