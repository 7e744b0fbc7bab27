package shell

import "strings"

// resolvePath resolves p against cwd into an absolute, cleaned path.
// "." and ".." segments are folded lexically; the result always starts
// with "/" and has no trailing slash except for the root itself.
func resolvePath(cwd, p string) string {
	var segs []string
	if !strings.HasPrefix(p, "/") {
		segs = splitSegs(cwd)
	}
	for _, s := range strings.Split(p, "/") {
		switch s {
		case "", ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

func splitSegs(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// joinPath appends name to dir with exactly one separator.
func joinPath(dir, name string) string {
	if dir == "/" || dir == "" {
		return "/" + name
	}
	return dir + "/" + name
}
