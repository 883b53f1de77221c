// Package version reports the glyphnote build.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information, set at build time via ldflags.
var (
	// CommitHash is the git commit the binary was built from
	CommitHash = "dev"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// modulePath is how glyphnote appears in a host binary's build info.
const modulePath = "github.com/teranos/glyphnote"

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information. When glyphnote is a
// dependency of another binary and no ldflags were set, the module version
// recorded in the build info is used.
func Get() Info {
	info := Info{
		CommitHash: CommitHash,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if info.Version == "dev" {
		if v, ok := moduleVersion(); ok {
			info.Version = v
		}
	}
	return info
}

func moduleVersion() (string, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range bi.Deps {
		if dep.Path == modulePath && dep.Version != "" && dep.Version != "(devel)" {
			return dep.Version, true
		}
	}
	return "", false
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("glyphnote %s (commit %s, %s)", i.Version, i.Short(), i.GoVersion)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
