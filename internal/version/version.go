package version

import "runtime"

const UnknownVersion = "unknown"

// provided at compile time
var (
	GitCommit  string // long commit hash of source tree, e.g. "0b5ed7a"
	GitBranch  string // current branch name the code is built off, e.g. "master"
	GitTag     string // current tag name the code is built off, e.g. "v1.5.0"
	GitSummary string // output of "git describe --tags --dirty --always", e.g. "4cb95ca-dirty"
	GitState   string // whether there are uncommitted changes, e.g. "clean" or "dirty"
	BuildDate  string // RFC3339 formatted UTC date, e.g. "2016-08-04T18:07:54Z"
	Version    string // contents of ./VERSION file, if exists
	GoVersion  string // the version of go, e.g. "go version go1.10.3 darwin/amd64"
)

func AppVersion() string {
	if GitTag != "" {
		return GitTag
	} else if Version != "" {
		return Version
	}

	return UnknownVersion
}

// Details lists the build information which is known, as reported by the `/v1/version` endpoint
func Details() map[string]string {
	res := map[string]string{
		"version": AppVersion(),
	}
	for k, v := range map[string]string{
		"commit":    GitCommit,
		"branch":    GitBranch,
		"state":     GitState,
		"buildDate": BuildDate,
	} {
		if v != "" {
			res[k] = v
		}
	}
	if GoVersion != "" {
		res["go"] = GoVersion
	} else {
		res["go"] = runtime.Version()
	}
	return res
}
