// Package version exposes build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time with -ldflags "-X ..."
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains build and toolchain information
type BuildInfo struct {
	Version   string   `json:"version"`
	SemVer    string   `json:"semver"`
	BuildDate string   `json:"build_date"`
	GitCommit string   `json:"git_commit"`
	GoVersion string   `json:"go_version"`
	Platform  string   `json:"platform"`
	Deps      []Module `json:"deps"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// GetBuildInfo returns the build information of the running binary.
// When the commit was not injected at build time the VCS revision recorded
// by the Go toolchain is used instead.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.Split(strings.TrimPrefix(Version, "v"), "-")[0],
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = setting.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = setting.Value
			}
		}
	}

	for _, dep := range buildInfo.Deps {
		info.Deps = append(info.Deps, Module{Path: dep.Path, Version: dep.Version})
	}

	return info
}

// FullVersion returns a formatted string with complete version information
func FullVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("dirguard %s\n", info.Version))
	b.WriteString(fmt.Sprintf("  Semantic Ver: %s\n", info.SemVer))
	b.WriteString(fmt.Sprintf("  Build Date:   %s\n", info.BuildDate))
	b.WriteString(fmt.Sprintf("  Commit:       %s\n", info.GitCommit))
	b.WriteString(fmt.Sprintf("  Go Version:   %s\n", info.GoVersion))
	b.WriteString(fmt.Sprintf("  Platform:     %s\n", info.Platform))

	if len(info.Deps) > 0 {
		b.WriteString("Dependencies:\n")
		for _, dep := range info.Deps {
			b.WriteString(fmt.Sprintf("  - %s@%s\n", dep.Path, dep.Version))
		}
	}

	return b.String()
}
