package procfsreader

import (
	"regexp"
	"strconv"
	"strings"
)

var cgroupNamespaceLinkRegex = regexp.MustCompile(`^cgroup:\[(\d+)\]`)

// CgroupLine is one entry of /proc/<pid>/cgroup, "hierarchy-ID:controller-list:cgroup-path".
type CgroupLine struct {
	HierarchyID string
	Controllers string
	Path        string
}

// ParseCgroupLine splits a cgroup membership line on its first two colons.
// The path keeps any further colons. Lines with fewer than three fields are rejected.
func ParseCgroupLine(line string) (CgroupLine, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) != 3 {
		return CgroupLine{}, false
	}
	return CgroupLine{
		HierarchyID: parts[0],
		Controllers: parts[1],
		Path:        parts[2],
	}, true
}

// FirstCgroupPath returns the trimmed path of the first line with a non-empty path.
func FirstCgroupPath(content string) (string, bool) {
	for _, line := range splitLines(content) {
		cgroupLine, ok := ParseCgroupLine(line)
		if !ok {
			continue
		}
		if path := strings.TrimSpace(cgroupLine.Path); path != "" {
			return path, true
		}
	}
	return "", false
}

// ParseNamespaceLink extracts the inode from a cgroup namespace link target such as "cgroup:[4026531835]".
func ParseNamespaceLink(link string) (uint64, bool) {
	m := cgroupNamespaceLinkRegex.FindStringSubmatch(link)
	if m == nil {
		return 0, false
	}
	inode, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return inode, true
}

func splitLines(content string) []string {
	lines := strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	return lines
}
