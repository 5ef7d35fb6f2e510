package containercontext

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kubescape/procidentity/pkg/containerid"
	"github.com/kubescape/procidentity/pkg/procfsreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

const hostCgroupNs = uint64(4026531835)

var dockerID = strings.Repeat("0123456789abcdef", 4)

func newTestResolver() (*Resolver, *procfsreader.ProcFsReaderMock) {
	reader := procfsreader.CreateProcFsReaderMock()
	reader.NamespaceInodes[1] = hostCgroupNs
	reader.CgroupPaths[1] = "/init.scope"
	return CreateResolver(reader, containerid.NewIdentifier(reader, containerid.DefaultInitPID), 2), reader
}

func TestProcessContainerContext(t *testing.T) {
	resolver, reader := newTestResolver()
	reader.NamespaceInodes[100] = 4026532600
	reader.CgroupPaths[100] = "/system.slice/docker-" + dockerID + ".scope"
	reader.CgroupPaths[200] = "/user.slice"
	reader.NamespaceInodes[300] = 4026532700

	tests := []struct {
		name     string
		pid      int
		expected ContainerContext
	}{
		{
			name: "host init",
			pid:  1,
			expected: ContainerContext{
				CgroupPath:    ptr.To("/init.scope"),
				CgroupNsInode: ptr.To(hostCgroupNs),
			},
		},
		{
			name: "docker container",
			pid:  100,
			expected: ContainerContext{
				ContainerID:   ptr.To(dockerID),
				CgroupPath:    ptr.To("/system.slice/docker-" + dockerID + ".scope"),
				CgroupNsInode: ptr.To(uint64(4026532600)),
			},
		},
		{
			name: "path without namespace",
			pid:  200,
			expected: ContainerContext{
				CgroupPath: ptr.To("/user.slice"),
			},
		},
		{
			name: "namespace without path",
			pid:  300,
			expected: ContainerContext{
				ContainerID:   ptr.To("cgroupns-4026532700"),
				CgroupNsInode: ptr.To(uint64(4026532700)),
			},
		},
		{
			name:     "process gone",
			pid:      400,
			expected: ContainerContext{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ProcessContainerContext(tt.pid)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.ContainerID != nil, got.IsContainerized())
		})
	}
}

func TestProcessContainerContexts(t *testing.T) {
	resolver, reader := newTestResolver()
	pids := []int{1}
	for pid := 1000; pid < 1050; pid++ {
		reader.CgroupPaths[pid] = "/lxc/box" + strings.Repeat("x", pid%7)
		pids = append(pids, pid)
	}

	results, err := resolver.ProcessContainerContexts(context.Background(), pids)
	require.NoError(t, err)
	require.Len(t, results, len(pids))

	for _, pid := range pids {
		assert.Equal(t, resolver.ProcessContainerContext(pid), results[pid])
	}
	assert.False(t, results[1].IsContainerized())
	assert.Equal(t, "boxxx", results[1003].GetContainerID())
}

func TestProcessContainerContextsCancelled(t *testing.T) {
	resolver, _ := newTestResolver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := resolver.ProcessContainerContexts(ctx, []int{1, 2, 3})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestContainerContextJSON(t *testing.T) {
	data, err := json.Marshal(ContainerContext{CgroupNsInode: ptr.To(uint64(7))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"container_id":null,"cgroup_path":null,"cgroup_ns_inode":7}`, string(data))
}
