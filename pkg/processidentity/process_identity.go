package processidentity

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/kubescape/procidentity/pkg/containercontext"
	"github.com/kubescape/procidentity/pkg/profilekey"
	"github.com/prometheus/procfs"
	"github.com/spf13/afero"
)

var ErrNoExecutable = errors.New("process has no executable")

// Identity is what the profile store needs to look up the behavior profile of a process.
type Identity struct {
	PID              int                               `json:"pid"`
	Exe              string                            `json:"exe"`
	ProfileKey       uint64                            `json:"profile_key"`
	ScopedProfileKey uint64                            `json:"scoped_profile_key"`
	Context          containercontext.ContainerContext `json:"context"`
}

type Resolver struct {
	procRoot   string
	contexts   containercontext.ContextResolver
	calculator *profilekey.Calculator
}

// CreateResolver creates a Resolver. procRoot is a host path read with procfs, and the
// <procRoot>/<pid>/exe link is stat'ed through calculator, so calculator must be backed by
// the OS filesystem; NewResolver builds one that is.
func CreateResolver(procRoot string, contexts containercontext.ContextResolver, calculator *profilekey.Calculator) *Resolver {
	return &Resolver{
		procRoot:   procRoot,
		contexts:   contexts,
		calculator: calculator,
	}
}

// Resolve computes the identity of pid. With an empty exe, the executable is taken from
// <procRoot>/<pid>/exe and keyed through that link, which resolves to the right file even when
// the process runs in another mount namespace. Errors mean the process should be skipped.
// NewResolver creates a Resolver keying executables on the OS filesystem.
func NewResolver(procRoot string, contexts containercontext.ContextResolver) *Resolver {
	return CreateResolver(procRoot, contexts, profilekey.NewCalculator(afero.NewOsFs()))
}

func (r *Resolver) Resolve(pid int, exe string) (Identity, error) {
	keyPath := exe
	if exe == "" {
		resolved, err := r.executable(pid)
		if err != nil {
			return Identity{}, err
		}
		exe = resolved
		keyPath = filepath.Join(r.procRoot, strconv.Itoa(pid), "exe")
	}

	cc := r.contexts.ProcessContainerContext(pid)

	id, err := r.calculator.FileIdentity(keyPath)
	if err != nil {
		logger.L().Debug("Resolver - skipping process without file identity",
			helpers.Int("pid", pid),
			helpers.String("exe", exe),
			helpers.Error(err))
		return Identity{}, fmt.Errorf("pid %d: %w", pid, err)
	}

	return Identity{
		PID:              pid,
		Exe:              exe,
		ProfileKey:       profilekey.ProfileKey(id),
		ScopedProfileKey: profilekey.ScopedProfileKey(id, cc.GetContainerID()),
		Context:          cc,
	}, nil
}

func (r *Resolver) executable(pid int) (string, error) {
	fs, err := procfs.NewFS(r.procRoot)
	if err != nil {
		return "", fmt.Errorf("opening proc filesystem %s: %w", r.procRoot, err)
	}
	proc, err := fs.Proc(pid)
	if err != nil {
		return "", fmt.Errorf("pid %d: %w", pid, err)
	}
	exe, err := proc.Executable()
	if err != nil {
		return "", fmt.Errorf("pid %d: %w", pid, err)
	}
	if exe == "" {
		return "", fmt.Errorf("pid %d: %w", pid, ErrNoExecutable)
	}
	return exe, nil
}
