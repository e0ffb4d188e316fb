// Package settings holds build metadata shared by the selx demo binary and
// library packages.
package settings

// CliBinaryName is the canonical binary name for the demo host.
const CliBinaryName = "selx"

// VersionInformation is populated at build time via ldflags and carries the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}
