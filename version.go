// Package clipact runs copy and cut clipboard actions against a page model.
// See the action package for the core and delegate for click wiring.
package clipact

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version is the release this tree was cut from, without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a full SemVer 2.0.0 version without the v
// prefix. Shorthands such as "1.2" are rejected.
func IsSemver(v string) bool {
	tag := "v" + strings.TrimSpace(v)
	if !semver.IsValid(tag) {
		return false
	}
	core, _, _ := strings.Cut(tag, "+")
	return semver.Canonical(tag) == core
}

// BuildVersion is Version plus the VCS revision and Go toolchain recorded in
// the binary, when available.
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version()
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	switch {
	case rev == "":
		return fmt.Sprintf("%s (%s)", Version(), info.GoVersion)
	case dirty:
		return fmt.Sprintf("%s (%s-dirty, %s)", Version(), rev, info.GoVersion)
	default:
		return fmt.Sprintf("%s (%s, %s)", Version(), rev, info.GoVersion)
	}
}
