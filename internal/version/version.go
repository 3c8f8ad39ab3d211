// Package version holds build version information.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/version.Version=...".
var Version = "1.0.0"
