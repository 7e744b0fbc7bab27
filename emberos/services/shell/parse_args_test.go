package shell

import (
	"reflect"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"dir", []string{"dir"}},
		{"copy a.txt b.txt", []string{"copy", "a.txt", "b.txt"}},
		{"echo  double  spaced", []string{"echo", "double", "spaced"}},
		{`echo "hello world"`, []string{"echo", "hello world"}},
		{`echo ""`, []string{"echo", ""}},
		{`echo a"b c"d`, []string{"echo", "ab cd"}},
	}
	for _, c := range cases {
		if got := splitArgs(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitArgs(%q) = %#v, want %#v", c.line, got, c.want)
		}
	}
}
