package shell

import (
	"reflect"
	"testing"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "dir", Aliases: []string{"ls", "cat"}})
	r.Register(&Command{Name: "cls"})

	for _, name := range []string{"dir", "DIR", "ls", "CAT"} {
		cmd, ok := r.Resolve(name)
		if !ok || cmd.Name != "dir" {
			t.Fatalf("Resolve(%q) = %v, %v", name, cmd, ok)
		}
	}
	if _, ok := r.Resolve("nope"); ok {
		t.Fatal("Resolve of unknown name succeeded")
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{Name: "b"})
	r.Register(&Command{Name: "a"})
	r.Register(&Command{Name: "c"})
	if got := r.CommandNames(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("CommandNames = %v", got)
	}
}
