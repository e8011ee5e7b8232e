package undotext

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v (without `v`) is a full SemVer 2.0.0 version.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return false
	}
	// semver.IsValid accepts shorthands like "v1.2"; require all three parts.
	tag := "v" + v
	return semver.IsValid(tag) && semver.Canonical(tag) == strings.SplitN(tag, "+", 2)[0]
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
