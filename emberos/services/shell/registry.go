package shell

import "strings"

// Command is one entry in the shell's dispatch table.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Run     func(s *Session, args []string) error
}

// Registry is the ordered command table. Registration order is preserved
// for help output and COMMAND-mode completion; lookup is case-insensitive
// and covers aliases.
type Registry struct {
	ordered []*Command
	lookup  map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{lookup: make(map[string]*Command)}
}

func (r *Registry) Register(c *Command) {
	if c == nil || c.Name == "" {
		return
	}
	r.ordered = append(r.ordered, c)
	r.lookup[strings.ToLower(c.Name)] = c
	for _, a := range c.Aliases {
		r.lookup[strings.ToLower(a)] = c
	}
}

// Resolve finds a command by name or alias, case-insensitively.
func (r *Registry) Resolve(name string) (*Command, bool) {
	c, ok := r.lookup[strings.ToLower(name)]
	return c, ok
}

// Commands returns the table in registration order.
func (r *Registry) Commands() []*Command { return r.ordered }

// CommandNames returns the primary names in registration order.
func (r *Registry) CommandNames() []string {
	names := make([]string, len(r.ordered))
	for i, c := range r.ordered {
		names[i] = c.Name
	}
	return names
}
