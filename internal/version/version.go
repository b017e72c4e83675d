// internal/version/version.go
package version

// Version is the released tool version. Overridable at build time via
// -ldflags "-X msat/internal/version.Version=...".
var Version = "0.4.1"
