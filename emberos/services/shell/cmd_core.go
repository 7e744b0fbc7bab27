package shell

import (
	"errors"
	"strconv"
	"strings"
)

func registerCoreCommands(r *Registry) {
	r.Register(&Command{
		Name:  "help",
		Usage: "help [command]",
		Help:  "List commands, or show help for one command.",
		Run:   cmdHelp,
	})
	r.Register(&Command{
		Name:  "echo",
		Usage: "echo [text...]",
		Help:  "Print the arguments.",
		Run:   cmdEcho,
	})
	r.Register(&Command{
		Name:    "cls",
		Aliases: []string{"clear"},
		Usage:   "cls",
		Help:    "Clear the screen.",
		Run:     cmdCls,
	})
	r.Register(&Command{
		Name:  "time",
		Usage: "time",
		Help:  "Show the system tick counter.",
		Run:   cmdTime,
	})
	r.Register(&Command{
		Name:  "sleep",
		Usage: "sleep <ms>",
		Help:  "Sleep for the given number of milliseconds.",
		Run:   cmdSleep,
	})
}

func cmdHelp(s *Session, args []string) error {
	if len(args) > 0 {
		cmd, ok := s.reg.Resolve(args[0])
		if !ok {
			s.say("%s: unknown command", args[0])
			return nil
		}
		s.say("%s", cmd.Usage)
		s.say("  %s", cmd.Help)
		if len(cmd.Aliases) > 0 {
			s.say("  aliases: %s", strings.Join(cmd.Aliases, ", "))
		}
		return nil
	}

	for _, cmd := range s.reg.Commands() {
		s.say("%-24s %s", cmd.Usage, cmd.Help)
	}
	return nil
}

func cmdEcho(s *Session, args []string) error {
	s.say("%s", strings.Join(args, " "))
	return nil
}

func cmdCls(s *Session, args []string) error {
	return s.term.Clear(s.ctx)
}

func cmdTime(s *Session, args []string) error {
	ticks := s.ctx.NowTick()
	ms := ticks % 1000
	sec := ticks / 1000
	s.say("uptime %d.%03ds (%d ticks)", sec, ms, ticks)
	return nil
}

func cmdSleep(s *Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: sleep <ms>")
	}
	ms, err := strconv.Atoi(args[0])
	if err != nil || ms < 0 {
		return errors.New("bad duration")
	}
	if s.clock == nil {
		return errors.New("no time capability")
	}
	return s.clock.Sleep(s.ctx, uint32(ms))
}
