package shell

import (
	"errors"
	"strings"

	vfsclient "ember/emberos/client/vfs"
	"ember/emberos/proto"
)

func registerRunCommand(r *Registry) {
	r.Register(&Command{
		Name:  "run",
		Usage: "run <program> [args...]",
		Help:  "Locate and launch a .bin program.",
		Run:   cmdRun,
	})
}

func cmdRun(s *Session, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: run <program> [args...]")
	}

	path, info, err := s.resolveProgram(args[0])
	if err != nil {
		return err
	}

	// No loader on this port yet: report what would be launched.
	// TODO: hand the image to a loader service once one exists.
	s.say("found %s (%d bytes)", path, info.Size)
	s.say("no program loader on this build")
	return nil
}

// resolveProgram finds the binary image for name. Names containing a path
// separator resolve against the working directory only; bare names get a
// .bin suffix if missing and are searched in cwd, then /mos, then /bin.
func (s *Session) resolveProgram(name string) (string, vfsclient.Entry, error) {
	if strings.ContainsAny(name, "*?") {
		return "", vfsclient.Entry{}, errors.New("wildcards not allowed")
	}

	if strings.Contains(name, "/") {
		path := resolvePath(s.cwd, name)
		info, err := s.fs.Stat(s.ctx, path)
		if err != nil {
			return "", vfsclient.Entry{}, err
		}
		if info.Type == proto.VFSEntryDir {
			return "", vfsclient.Entry{}, errors.New(path + ": is a directory")
		}
		return path, info, nil
	}

	file := name
	if !hasSuffixFold(file, binSuffix) {
		file += binSuffix
	}

	dirs := append([]string{s.cwd}, binSearchDirs...)
	for _, dir := range dirs {
		path := resolvePath(dir, file)
		info, err := s.fs.Stat(s.ctx, path)
		if err != nil {
			continue
		}
		if info.Type == proto.VFSEntryDir {
			continue
		}
		return path, info, nil
	}
	return "", vfsclient.Entry{}, errors.New(file + ": not found")
}
