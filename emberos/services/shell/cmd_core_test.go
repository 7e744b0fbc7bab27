package shell

import (
	"strings"
	"testing"
)

func newCoreSession() (*Session, *fakeConsole) {
	con := newFakeConsole(80)
	s := &Session{con: con, reg: NewRegistry()}
	registerCoreCommands(s.reg)
	return s, con
}

func TestSleepCommandWithoutClock(t *testing.T) {
	s, con := newCoreSession()
	s.dispatch("sleep 5")
	if !strings.Contains(con.String(), "no time capability") {
		t.Fatalf("output %q", con.String())
	}
}

func TestSleepCommandRejectsBadArgs(t *testing.T) {
	s, con := newCoreSession()

	s.dispatch("sleep")
	if !strings.Contains(con.String(), "usage: sleep <ms>") {
		t.Fatalf("output %q", con.String())
	}

	con.reset()
	s.dispatch("sleep soon")
	if !strings.Contains(con.String(), "bad duration") {
		t.Fatalf("output %q", con.String())
	}

	con.reset()
	s.dispatch("sleep -1")
	if !strings.Contains(con.String(), "bad duration") {
		t.Fatalf("output %q", con.String())
	}
}
