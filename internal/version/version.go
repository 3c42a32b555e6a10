package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/fancy/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/fancy/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/fancy/internal/version.Date={{.Date}}
)

// String is the version line printed by `fancy --version`
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
