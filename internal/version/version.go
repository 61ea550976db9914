// Package version provides build-time version information.
package version

import "fmt"

// Name is the application name shown in titles and logs.
const Name = "MFD Charts"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns the name and version, plus the commit when known.
func String() string {
	if GitCommit == "unknown" || GitCommit == "" {
		return fmt.Sprintf("%s v%s", Name, Version)
	}
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s v%s (%s)", Name, Version, short)
}
