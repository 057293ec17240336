// Package version carries the build version, overridable with
// -ldflags "-X mfqe/internal/version.Version=...".
package version

var Version = "0.4.0"
