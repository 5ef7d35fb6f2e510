package processidentity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kubescape/procidentity/pkg/containercontext"
	"github.com/kubescape/procidentity/pkg/profilekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func setupProcRoot(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	bin := filepath.Join(t.TempDir(), "nginx")
	require.NoError(t, os.WriteFile(bin, []byte("\x7fELF"), 0755))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "10"), 0755))
	require.NoError(t, os.Symlink(bin, filepath.Join(root, "10", "exe")))
	// kernel thread: pid directory without an exe link
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2"), 0755))
	return root, bin
}

func TestResolve(t *testing.T) {
	root, bin := setupProcRoot(t)
	contexts := containercontext.CreateResolverMock()
	contexts.Contexts[10] = containercontext.ContainerContext{
		ContainerID: ptr.To("web01"),
		CgroupPath:  ptr.To("/lxc/web01"),
	}
	calculator := profilekey.NewCalculator(nil)
	resolver := CreateResolver(root, contexts, calculator)

	identity, err := resolver.Resolve(10, "")
	require.NoError(t, err)

	fileID, err := calculator.FileIdentity(bin)
	require.NoError(t, err)

	assert.Equal(t, 10, identity.PID)
	assert.Equal(t, bin, identity.Exe)
	assert.Equal(t, profilekey.ProfileKey(fileID), identity.ProfileKey)
	assert.Equal(t, profilekey.HashToU64("web01", fileID.Device, fileID.Inode), identity.ScopedProfileKey)
	assert.Equal(t, contexts.Contexts[10], identity.Context)
}

func TestResolveExplicitExe(t *testing.T) {
	root, bin := setupProcRoot(t)
	calculator := profilekey.NewCalculator(nil)
	resolver := CreateResolver(root, containercontext.CreateResolverMock(), calculator)

	identity, err := resolver.Resolve(55, bin)
	require.NoError(t, err)

	want, err := calculator.CalculateProfileKey(bin)
	require.NoError(t, err)
	assert.Equal(t, want, identity.ProfileKey)
	assert.Equal(t, want, identity.ScopedProfileKey, "host processes keep the unscoped key")
	assert.False(t, identity.Context.IsContainerized())
}

func TestResolveErrors(t *testing.T) {
	root, _ := setupProcRoot(t)
	resolver := CreateResolver(root, containercontext.CreateResolverMock(), profilekey.NewCalculator(nil))

	_, err := resolver.Resolve(2, "")
	assert.ErrorIs(t, err, ErrNoExecutable)

	_, err = resolver.Resolve(404, "")
	assert.Error(t, err)

	_, err = resolver.Resolve(10, filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewResolverUsesHostFilesystem(t *testing.T) {
	root, bin := setupProcRoot(t)
	resolver := NewResolver(root, containercontext.CreateResolverMock())

	identity, err := resolver.Resolve(10, "")
	require.NoError(t, err)

	want, err := profilekey.NewCalculator(nil).CalculateProfileKey(bin)
	require.NoError(t, err)
	assert.Equal(t, want, identity.ProfileKey)
}
