package procfsreader

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/spf13/afero"
)

const DefaultProcRoot = "/proc"

var ErrSymlinksUnsupported = errors.New("filesystem does not support reading symlinks")

// FsReader reads cgroup facts from a proc filesystem mounted at root.
type FsReader struct {
	fs   afero.Fs
	root string
}

var _ ProcFsReader = (*FsReader)(nil)

// CreateProcFsReader creates a reader over fs with the proc filesystem at root.
// An empty root defaults to /proc.
func CreateProcFsReader(fs afero.Fs, root string) *FsReader {
	if root == "" {
		root = DefaultProcRoot
	}
	return &FsReader{
		fs:   fs,
		root: root,
	}
}

// NewProcFsReader creates a reader over the host filesystem.
func NewProcFsReader(root string) *FsReader {
	return CreateProcFsReader(afero.NewOsFs(), root)
}

func (r *FsReader) ReadCgroupNamespaceInode(pid int) (uint64, bool) {
	nsPath := r.pidPath(pid, "ns", "cgroup")
	link, err := r.readlink(nsPath)
	if err != nil {
		logger.L().Debug("ProcFsReader - cgroup namespace not readable",
			helpers.Int("pid", pid),
			helpers.String("path", nsPath),
			helpers.Error(err))
		return 0, false
	}

	inode, ok := ParseNamespaceLink(link)
	if !ok {
		logger.L().Debug("ProcFsReader - unexpected cgroup namespace link",
			helpers.Int("pid", pid),
			helpers.String("link", link))
		return 0, false
	}
	return inode, true
}

func (r *FsReader) ReadCgroupPath(pid int) (string, bool) {
	cgroupPath := r.pidPath(pid, "cgroup")
	content, err := afero.ReadFile(r.fs, cgroupPath)
	if err != nil {
		logger.L().Debug("ProcFsReader - cgroup file not readable",
			helpers.Int("pid", pid),
			helpers.String("path", cgroupPath),
			helpers.Error(err))
		return "", false
	}
	if len(content) == 0 {
		return "", false
	}
	return FirstCgroupPath(string(content))
}

func (r *FsReader) readlink(name string) (string, error) {
	linker, ok := r.fs.(afero.LinkReader)
	if !ok {
		return "", ErrSymlinksUnsupported
	}
	return linker.ReadlinkIfPossible(name)
}

func (r *FsReader) pidPath(pid int, elem ...string) string {
	return filepath.Join(append([]string{r.root, strconv.Itoa(pid)}, elem...)...)
}
