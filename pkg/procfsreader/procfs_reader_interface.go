package procfsreader

// ProcFsReader reads the per-process cgroup facts exposed by the kernel.
// A false second return value means the fact is absent: the process is gone,
// the file is inaccessible or its content does not have the expected shape.
type ProcFsReader interface {
	// ReadCgroupNamespaceInode returns the inode of the cgroup namespace the process belongs to.
	ReadCgroupNamespaceInode(pid int) (uint64, bool)
	// ReadCgroupPath returns the first non-empty cgroup membership path of the process.
	ReadCgroupPath(pid int) (string, bool)
}
