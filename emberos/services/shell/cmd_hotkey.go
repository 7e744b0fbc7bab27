package shell

import (
	"errors"
	"strconv"
	"strings"
)

func registerHotkeyCommand(r *Registry) {
	r.Register(&Command{
		Name:    "hotkey",
		Aliases: []string{"fn"},
		Usage:   "hotkey [n [command]]",
		Help:    "List, assign or clear the F1-F12 macros.",
		Run:     cmdHotkey,
	})
}

func cmdHotkey(s *Session, args []string) error {
	if len(args) == 0 {
		for i := 0; i < HotkeySlots; i++ {
			cmd, set := s.hotkeys.Get(i)
			if !set {
				cmd = "(not set)"
			}
			s.say("F%-2d %s", i+1, cmd)
		}
		return nil
	}

	// Slots are numbered F1..F12 on the keyboard, 1-based here too.
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > HotkeySlots {
		return errors.New("usage: hotkey [n [command]], n in 1..12")
	}
	slot := n - 1

	if len(args) == 1 {
		s.hotkeys.Clear(slot)
		s.say("F%d cleared", n)
		return nil
	}

	cmd := strings.Join(args[1:], " ")
	s.hotkeys.Assign(slot, cmd)
	s.say("F%d = %s", n, cmd)
	return nil
}
