package profilekey

import (
	"fmt"

	"github.com/spf13/afero"
)

// Calculator derives profile keys from the filesystem identity of executables.
type Calculator struct {
	fs afero.Fs
}

func NewCalculator(fs afero.Fs) *Calculator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Calculator{fs: fs}
}

// FileIdentity stats path, following symlinks, and returns its device and inode.
func (c *Calculator) FileIdentity(path string) (FileIdentity, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return FileIdentity{}, err
	}
	id, err := fileIdentity(info)
	if err != nil {
		return FileIdentity{}, fmt.Errorf("%s: %w", path, err)
	}
	return id, nil
}

// CalculateProfileKey returns device<<32 | inode for the file at path.
func (c *Calculator) CalculateProfileKey(path string) (uint64, error) {
	id, err := c.FileIdentity(path)
	if err != nil {
		return 0, err
	}
	return ProfileKey(id), nil
}

// CalculateScopedProfileKey keys the file by container. Without a container id the key is the
// plain CalculateProfileKey value.
func (c *Calculator) CalculateScopedProfileKey(path, containerID string) (uint64, error) {
	id, err := c.FileIdentity(path)
	if err != nil {
		return 0, err
	}
	return ScopedProfileKey(id, containerID), nil
}

// ProfileKey combines device and inode. Inodes are assumed to fit in 32 bits; wider inodes
// overlap the device bits and may collide.
func ProfileKey(id FileIdentity) uint64 {
	return id.Device<<32 | id.Inode
}

// ScopedProfileKey hashes (containerID, device, inode) in that order.
func ScopedProfileKey(id FileIdentity, containerID string) uint64 {
	if containerID == "" {
		return ProfileKey(id)
	}
	return HashToU64(containerID, id.Device, id.Inode)
}
