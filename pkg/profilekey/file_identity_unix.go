//go:build unix

package profilekey

import "syscall"

func fileIdentityFromSys(sys any) (FileIdentity, error) {
	st, ok := sys.(*syscall.Stat_t)
	if !ok || st == nil {
		return FileIdentity{}, ErrNoFileIdentity
	}
	return FileIdentity{
		Device: uint64(st.Dev),
		Inode:  uint64(st.Ino),
	}, nil
}
