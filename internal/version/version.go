package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String is the version line printed by eg --version.
func String() string {
	if CommitHash == "unknown" && BuildDate == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, CommitHash, BuildDate)
}
