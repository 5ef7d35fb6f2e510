package containerid

import (
	"regexp"
	"slices"
	"strings"
)

// Matcher extracts a container id from a non-empty cgroup path.
type Matcher func(cgroupPath string) (string, bool)

var (
	hexIDRegex  = regexp.MustCompile(`(?i)[0-9a-f]{64}|[0-9a-f]{32}|[0-9a-f]{12}`)
	podUIDRegex = regexp.MustCompile(`(?i)pod([0-9a-f_-]{32,36})`)
)

// rootSliceNames are leaf cgroup names known not to belong to a container.
var rootSliceNames = []string{"/", "user.slice", "system.slice", "init.scope"}

// DefaultMatchers is the precedence order used by the Identifier.
var DefaultMatchers = []Matcher{
	MatchHexID,
	MatchPodUID,
	MatchLeafSegment,
}

// MatchHexID returns the last 64, 32 or 12 character hex run in the path, lower-cased.
// Paths nest from outermost to innermost, so the last run is the most specific one.
func MatchHexID(cgroupPath string) (string, bool) {
	matches := hexIDRegex.FindAllString(cgroupPath, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.ToLower(matches[len(matches)-1]), true
}

// MatchPodUID returns the Kubernetes pod UID following a "pod" marker.
// Systemd-driver slices spell the UID with underscores; they are normalized to hyphens.
func MatchPodUID(cgroupPath string) (string, bool) {
	m := podUIDRegex.FindStringSubmatch(cgroupPath)
	if m == nil {
		return "", false
	}
	return strings.ToLower(strings.ReplaceAll(m[1], "_", "-")), true
}

// MatchLeafSegment returns the last path segment unless it is empty or a known host slice.
// The segment is returned as is.
func MatchLeafSegment(cgroupPath string) (string, bool) {
	leaf := cgroupPath[strings.LastIndex(cgroupPath, "/")+1:]
	if leaf == "" || slices.Contains(rootSliceNames, leaf) {
		return "", false
	}
	return leaf, true
}
