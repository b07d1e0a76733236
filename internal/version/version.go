package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/bundlr/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bundlr/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/bundlr/internal/version.Date={{.Date}}
)

// String returns the multi-line version report printed by `bundlr version`
func String() string {
	return fmt.Sprintf("bundlr version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
