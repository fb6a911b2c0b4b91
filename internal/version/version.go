package version

import (
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the svast CLI, overridable via -ldflags -X.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get snapshots the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Colored renders the version with one color per numeric component.
// Colors follow color.NoColor, so output is plain when it is disabled.
func (i Info) Colored() string {
	core, suffix, hasSuffix := strings.Cut(i.Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return i.Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
