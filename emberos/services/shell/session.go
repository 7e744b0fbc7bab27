package shell

import (
	"fmt"

	termclient "ember/emberos/client/term"
	timeclient "ember/emberos/client/time"
	vfsclient "ember/emberos/client/vfs"
	"ember/emberos/kernel"
)

// Session is the state of one interactive shell: the working directory,
// the command table and the editor's history and hotkey stores, plus the
// clients commands talk through.
type Session struct {
	ctx   *kernel.Context
	con   Console
	term  *termclient.Client
	fs    *vfsclient.Client
	clock *timeclient.Client

	cwd     string
	reg     *Registry
	history *HistoryStore
	hotkeys *HotkeyTable
}

func newSession(ctx *kernel.Context, con Console, term *termclient.Client, fs *vfsclient.Client, clock *timeclient.Client) *Session {
	s := &Session{
		ctx:     ctx,
		con:     con,
		term:    term,
		fs:      fs,
		clock:   clock,
		cwd:     "/",
		reg:     NewRegistry(),
		history: NewHistoryStore(),
		hotkeys: &HotkeyTable{},
	}
	registerCoreCommands(s.reg)
	registerFSCommands(s.reg)
	registerHotkeyCommand(s.reg)
	registerRunCommand(s.reg)
	return s
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string { return s.cwd }

// say writes a formatted line to the terminal.
func (s *Session) say(format string, args ...interface{}) {
	s.con.WriteString(fmt.Sprintf(format, args...))
	s.con.WriteString("\r\n")
}

// dispatch parses and runs one submitted line. Command errors are printed,
// never fatal.
func (s *Session) dispatch(line string) {
	args := splitArgs(line)
	if len(args) == 0 {
		return
	}
	cmd, ok := s.reg.Resolve(args[0])
	if !ok {
		s.say("%s: unknown command (try HELP)", args[0])
		return
	}
	if err := cmd.Run(s, args[1:]); err != nil {
		s.say("%s: %v", cmd.Name, err)
	}
}
