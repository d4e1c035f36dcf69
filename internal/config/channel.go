package config

import "os"

// Build metadata, overridable via ldflags.
var (
	// ReleaseChannel is the build's release channel. Options and enum
	// variants marked unstable may only be set from a configuration file on
	// a nightly-class ("nightly" or "dev") build.
	ReleaseChannel = "stable"

	// BuildVersion is the tool version, used as the default for the
	// required_version option.
	BuildVersion = "1.0.0"
)

// NightlyChannel reports whether this build may enable unstable options.
// The CFG_RELEASE_CHANNEL environment variable overrides the compiled-in
// channel, mirroring the original tool's build configuration.
func NightlyChannel() bool {
	channel := ReleaseChannel
	if env := os.Getenv("CFG_RELEASE_CHANNEL"); env != "" {
		channel = env
	}
	return channel == "nightly" || channel == "dev"
}
