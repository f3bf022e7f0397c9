// Package version provides build version information. The client sends
// it as part of its User-Agent header.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags.
var Version = "dev"

// GetShortVersion returns a short version string, appending the VCS
// revision when the binary carries build info.
func GetShortVersion() string {
	commit := ""
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
				if len(commit) > 7 {
					commit = commit[:7]
				}
			}
		}
	}
	if commit != "" {
		return fmt.Sprintf("%s-%s", Version, commit)
	}
	return Version
}
