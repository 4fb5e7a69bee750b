package version

// Version is overridden at build time with -ldflags "-X github.com/bnema/clickup-cli/internal/version.Version=...".
var Version = "0.1.0-dev"
