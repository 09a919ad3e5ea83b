package buildinfo

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "1.0.0"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("ams %s (commit=%s, date=%s)", Version, Commit, Date)
}
