package procfsreader

// ProcFsReaderMock serves fixed per-pid facts. Missing pids are absent.
type ProcFsReaderMock struct {
	NamespaceInodes map[int]uint64
	CgroupPaths     map[int]string
}

var _ ProcFsReader = (*ProcFsReaderMock)(nil)

func CreateProcFsReaderMock() *ProcFsReaderMock {
	return &ProcFsReaderMock{
		NamespaceInodes: map[int]uint64{},
		CgroupPaths:     map[int]string{},
	}
}

func (m *ProcFsReaderMock) ReadCgroupNamespaceInode(pid int) (uint64, bool) {
	inode, ok := m.NamespaceInodes[pid]
	return inode, ok
}

func (m *ProcFsReaderMock) ReadCgroupPath(pid int) (string, bool) {
	path, ok := m.CgroupPaths[pid]
	return path, ok
}
