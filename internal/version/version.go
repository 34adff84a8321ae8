// Package version holds build metadata set through ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/listingproc/internal/version.Version=v1.0.0"
package version

import "fmt"

// Version is the release of the binary.
var Version = "unknown"

// Build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("listingproc %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
