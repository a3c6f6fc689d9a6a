// Package version carries build metadata set through ldflags:
//
//	go build -ldflags "-X github.com/punchlinehub/sitecontent/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String is the --version output.
func String() string {
	return fmt.Sprintf("sitecontent %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
