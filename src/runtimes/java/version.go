package java

import (
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

var (
	orderingPattern   = regexp.MustCompile(`(\d+)(\.(\d+))?(\.(\d+))?(-([\w.]+))?(\+([\w.]+))?`)
	identifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*$`)
	correttoPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+(\.(.+))?$`)
)

// parseOrdering derives a semver from a Java version such as 21.0.1,
// 22-ea+27 or 21.0.1+12.1. Missing minor and patch default to 0; a
// prerelease or build that is not a valid identifier is dropped.
func parseOrdering(version string) (*semver.Version, bool) {
	m := orderingPattern.FindStringSubmatch(version)
	if m == nil {
		return nil, false
	}

	parts := [3]uint64{}
	for i, s := range []string{m[1], m[3], m[5]} {
		if s == "" {
			continue
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}

	pre, build := m[7], m[9]
	if !identifierPattern.MatchString(pre) {
		pre = ""
	}
	if !identifierPattern.MatchString(build) {
		build = ""
	}
	return semver.New(parts[0], parts[1], parts[2], pre, build), true
}

// correttoVersion moves everything after the patch number of a Corretto
// version into build metadata: 21.0.1.12.1 becomes 21.0.1+12.1
func correttoVersion(version string) string {
	m := correttoPattern.FindStringSubmatchIndex(version)
	if m == nil || m[4] < 0 {
		return version
	}
	return version[:m[2]] + "+" + version[m[4]:]
}
