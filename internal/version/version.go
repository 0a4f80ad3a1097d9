package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the moc tools.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the tools.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Pretty returns Version with major, minor and patch numbers colored.
// A version that is not of the form X.Y.Z[-suffix] is returned unchanged.
func Pretty() string {
	core, suffix, hasSuffix := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
