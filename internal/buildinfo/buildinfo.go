// Package buildinfo carries the version stamp injected at link time.
package buildinfo

// Set via -ldflags "-X ember/internal/buildinfo.Version=..." and friends.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short picks the most specific identifier available: a release version,
// else a commit hash, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
