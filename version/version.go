// Package version carries build-time version metadata, injected via
// -ldflags at build time; the zero values below are what a `go run` or
// unflagged `go build` reports.
package version

import "runtime"

var (
	// GitRelease is the tagged release or describe string for this build.
	GitRelease = "dev"
	// GitCommit is the commit hash this binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit timestamp this binary was built from.
	GitCommitDate = "unknown"
)

// GoInfo reports the Go toolchain version used to build this binary.
var GoInfo = runtime.Version()
