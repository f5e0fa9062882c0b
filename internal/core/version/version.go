// Package version reports build information for the binaries
package version

import "runtime/debug"

// BuildInfo describes one build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Set with -ldflags "-X 'dreammap/internal/core/version.version=v0.1.0'
// -X 'dreammap/internal/core/version.commit=abcd' -X 'dreammap/internal/core/version.date=2026-01-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for service. Without ldflags the
// commit falls back to the vcs stamp of the module build.
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.Go = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					bi.Commit = s.Value
				case "vcs.time":
					if bi.Date == "unknown" {
						bi.Date = s.Value
					}
				}
			}
		}
	}
	return bi
}
