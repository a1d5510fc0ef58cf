// Package version reports what uptimecal binary is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	devVersion = "dev"
	unknown    = "unknown"
	shortSHA   = 12
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats i on one line.
func (i Info) String() string {
	return fmt.Sprintf("uptimecal %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// Values injected through -ldflags and handed over by main.
var (
	version   string
	commit    string
	buildDate string
)

var readBuildInfo = debug.ReadBuildInfo

// Set records ldflags values. Empty values are filled from the build info
// the go tool embeds.
func Set(v, c, d string) {
	version, commit, buildDate = v, c, d
}

// Get returns the version info of the running binary.
func Get() Info {
	info := Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	if bi, ok := readBuildInfo(); ok {
		fromBuildInfo(&info, bi)
	}

	if info.Version == "" {
		info.Version = devVersion
	}
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	var revision, modified, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if info.Commit == "" && revision != "" {
		if len(revision) > shortSHA {
			revision = revision[:shortSHA]
		}
		if modified == "true" {
			revision += "-dirty"
		}
		info.Commit = revision
	}
	if info.BuildDate == "" {
		info.BuildDate = vcsTime
	}
}
