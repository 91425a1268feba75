// Package build holds version information injected at build time.
package build

// These variables are overridden via -ldflags at release build time.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
