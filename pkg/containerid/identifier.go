package containerid

import (
	"slices"
	"strconv"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/kubescape/procidentity/pkg/procfsreader"
)

const (
	DefaultInitPID = 1

	// CgroupNamespacePrefix prefixes ids synthesized from a private cgroup namespace.
	CgroupNamespacePrefix = "cgroupns-"
)

// Identifier derives best-effort container ids from cgroup metadata.
type Identifier struct {
	reader   procfsreader.ProcFsReader
	initPID  int
	matchers []Matcher
}

// NewIdentifier creates an Identifier that compares namespaces against initPID, usually 1.
func NewIdentifier(reader procfsreader.ProcFsReader, initPID int) *Identifier {
	if initPID <= 0 {
		initPID = DefaultInitPID
	}
	return &Identifier{
		reader:   reader,
		initPID:  initPID,
		matchers: slices.Clone(DefaultMatchers),
	}
}

// DeriveContainerID runs the path matchers in order, then falls back to the cgroup namespace.
// An empty cgroupPath or a zero cgroupNsInode is treated as absent. Returns false for
// host-scoped processes.
func (i *Identifier) DeriveContainerID(cgroupPath string, cgroupNsInode uint64) (string, bool) {
	if cgroupPath != "" {
		for _, match := range i.matchers {
			if id, ok := match(cgroupPath); ok {
				return id, true
			}
		}
	}

	if cgroupNsInode != 0 && !i.isHostCgroupNamespace(cgroupNsInode) {
		return CgroupNamespacePrefix + strconv.FormatUint(cgroupNsInode, 10), true
	}

	return "", false
}

// isHostCgroupNamespace reads the init process namespace on every call; it changes across
// reboots and when the agent itself runs under a container init. An unreadable init namespace
// never matches.
func (i *Identifier) isHostCgroupNamespace(inode uint64) bool {
	hostInode, ok := i.reader.ReadCgroupNamespaceInode(i.initPID)
	if !ok {
		logger.L().Debug("Identifier - init cgroup namespace not readable",
			helpers.Int("initPid", i.initPID))
		return false
	}
	return hostInode == inode
}
