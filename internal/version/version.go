// Package version holds build metadata stamped in via ldflags; the health
// endpoint and startup log report it.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
