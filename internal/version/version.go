package version

// Version is the released tool version. Overridden at build time via
// -ldflags "-X evosim/internal/version.Version=...".
var Version = "0.2.0"
