package profilekey

import (
	"errors"
	"os"
)

var ErrNoFileIdentity = errors.New("file info carries no device and inode")

// FileIdentity is the (device, inode) pair that identifies a file on the host.
type FileIdentity struct {
	Device uint64
	Inode  uint64
}

func fileIdentity(info os.FileInfo) (FileIdentity, error) {
	if info == nil {
		return FileIdentity{}, ErrNoFileIdentity
	}
	return fileIdentityFromSys(info.Sys())
}
