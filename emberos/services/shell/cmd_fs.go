package shell

import (
	"errors"
	"fmt"

	"ember/emberos/proto"
)

func registerFSCommands(r *Registry) {
	r.Register(&Command{
		Name:    "dir",
		Aliases: []string{"ls", "cat"},
		Usage:   "dir [path]",
		Help:    "List a directory.",
		Run:     cmdDir,
	})
	r.Register(&Command{
		Name:  "cd",
		Usage: "cd <path>",
		Help:  "Change the working directory.",
		Run:   cmdCd,
	})
	r.Register(&Command{
		Name:  "type",
		Usage: "type <file>",
		Help:  "Print the contents of a file.",
		Run:   cmdType,
	})
	r.Register(&Command{
		Name:  "mkdir",
		Usage: "mkdir <path>",
		Help:  "Create a directory.",
		Run:   cmdMkdir,
	})
	r.Register(&Command{
		Name:    "delete",
		Aliases: []string{"rm", "erase"},
		Usage:   "delete <path>",
		Help:    "Delete a file or empty directory.",
		Run:     cmdDelete,
	})
	r.Register(&Command{
		Name:    "rename",
		Aliases: []string{"mv", "move"},
		Usage:   "rename <old> <new>",
		Help:    "Rename or move a file or directory.",
		Run:     cmdRename,
	})
	r.Register(&Command{
		Name:    "copy",
		Aliases: []string{"cp"},
		Usage:   "copy <src> <dst>",
		Help:    "Copy a file.",
		Run:     cmdCopy,
	})
}

func cmdDir(s *Session, args []string) error {
	path := s.cwd
	if len(args) > 0 {
		path = resolvePath(s.cwd, args[0])
	}

	entries, err := s.fs.List(s.ctx, path)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Type == proto.VFSEntryDir {
			s.con.Put(proto.TermCtrlColor)
			s.con.Put(dirColorIndex)
			s.say("%-20s <dir>", e.Name+"/")
			s.con.Put(proto.TermCtrlColor)
			s.con.Put(defaultColorIndex)
		} else {
			s.say("%-20s %6d", e.Name, e.Size)
		}
	}
	s.say("%d item(s)", len(entries))
	return nil
}

func cmdCd(s *Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: cd <path>")
	}
	target := resolvePath(s.cwd, args[0])
	if target != "/" {
		info, err := s.fs.Stat(s.ctx, target)
		if err != nil {
			return err
		}
		if info.Type != proto.VFSEntryDir {
			return fmt.Errorf("%s: not a directory", target)
		}
	}
	s.cwd = target
	return nil
}

func cmdType(s *Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: type <file>")
	}
	path := resolvePath(s.cwd, args[0])

	const chunk = 96
	var off uint32
	for {
		data, eof, err := s.fs.ReadAt(s.ctx, path, off, chunk)
		if err != nil {
			return err
		}
		for _, b := range data {
			if b == '\n' {
				s.con.WriteString("\r\n")
			} else {
				s.con.Put(b)
			}
		}
		off += uint32(len(data))
		if eof {
			break
		}
	}
	s.con.WriteString("\r\n")
	return nil
}

func cmdMkdir(s *Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mkdir <path>")
	}
	return s.fs.Mkdir(s.ctx, resolvePath(s.cwd, args[0]))
}

func cmdDelete(s *Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <path>")
	}
	return s.fs.Remove(s.ctx, resolvePath(s.cwd, args[0]))
}

func cmdRename(s *Session, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: rename <old> <new>")
	}
	return s.fs.Rename(s.ctx, resolvePath(s.cwd, args[0]), resolvePath(s.cwd, args[1]))
}

func cmdCopy(s *Session, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: copy <src> <dst>")
	}
	return s.fs.Copy(s.ctx, resolvePath(s.cwd, args[0]), resolvePath(s.cwd, args[1]))
}
