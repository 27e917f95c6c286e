// Package version reports the crudgen build.
package version

import "fmt"

// Set at build time via -ldflags "-X github.com/example/crudgen/internal/version.Commit=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("crudgen %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
