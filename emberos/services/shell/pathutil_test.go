package shell

import "testing"

func TestResolvePath(t *testing.T) {
	cases := []struct {
		cwd, p, want string
	}{
		{"/", "", "/"},
		{"/", ".", "/"},
		{"/", "bin", "/bin"},
		{"/home", "docs", "/home/docs"},
		{"/home", "/bin", "/bin"},
		{"/home/docs", "..", "/home"},
		{"/home", "../..", "/"},
		{"/", "..", "/"},
		{"/home", "./docs/../bin", "/home/bin"},
		{"/home", "a//b/", "/home/a/b"},
	}
	for _, c := range cases {
		if got := resolvePath(c.cwd, c.p); got != c.want {
			t.Errorf("resolvePath(%q, %q) = %q, want %q", c.cwd, c.p, got, c.want)
		}
	}
}

func TestJoinPath(t *testing.T) {
	if got := joinPath("/", "bin"); got != "/bin" {
		t.Fatalf("got %q", got)
	}
	if got := joinPath("/home", "docs"); got != "/home/docs" {
		t.Fatalf("got %q", got)
	}
}

func TestFoldHelpers(t *testing.T) {
	if !hasPrefixFold("GAME.BIN", "ga") {
		t.Fatal("hasPrefixFold")
	}
	if hasPrefixFold("g", "ga") {
		t.Fatal("hasPrefixFold short")
	}
	if !hasSuffixFold("GAME.BIN", ".bin") {
		t.Fatal("hasSuffixFold")
	}
	if got := trimSuffixFold("GAME.BIN", ".bin"); got != "GAME" {
		t.Fatalf("trimSuffixFold = %q", got)
	}
	if got := commonPrefixFold("LeAr", "LSAT"); got != "L" {
		t.Fatalf("commonPrefixFold = %q", got)
	}
	if got := commonPrefixFold("abc", "ABCD"); got != "abc" {
		t.Fatalf("commonPrefixFold = %q", got)
	}
}
