package containercontext

// ContainerContext is a best-effort snapshot of where a process runs.
// Nil fields are facts that could not be read or derived.
type ContainerContext struct {
	ContainerID   *string `json:"container_id"`
	CgroupPath    *string `json:"cgroup_path"`
	CgroupNsInode *uint64 `json:"cgroup_ns_inode"`
}

// GetContainerID returns the container id, or "" for host-scoped processes.
func (c ContainerContext) GetContainerID() string {
	if c.ContainerID == nil {
		return ""
	}
	return *c.ContainerID
}

func (c ContainerContext) IsContainerized() bool {
	return c.ContainerID != nil
}
