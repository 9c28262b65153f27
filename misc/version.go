// Package misc keeps build time program identity.
package misc

import (
	"runtime/debug"
	"sync"
)

// set with -ldflags "-X xlstyle/misc.version=... -X xlstyle/misc.gitHash=..."
var (
	appName = "xlstyle"
	version = "dev"
	gitHash = ""
)

var buildInfo = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
})

func GetAppName() string { return appName }

func GetVersion() string { return version }

// GetGitHash returns the commit program was built from, falling back to VCS
// information recorded by the toolchain.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	return buildInfo()
}
