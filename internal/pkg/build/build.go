// Package build holds values set on build time via -ldflags.
package build

// nolint: gochecknoglobals
var (
	BuildVersion = "dev"
	GitCommit    = "-"
	BuildDate    = "-"
)
