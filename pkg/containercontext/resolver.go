package containercontext

import (
	"context"
	"fmt"
	"sync"

	"github.com/kubescape/go-logger"
	"github.com/kubescape/go-logger/helpers"
	"github.com/kubescape/procidentity/pkg/containerid"
	"github.com/kubescape/procidentity/pkg/procfsreader"
	"github.com/panjf2000/ants/v2"
	"k8s.io/utils/ptr"
)

const DefaultWorkers = 4

// Resolver composes the proc reader and the container identifier.
type Resolver struct {
	reader     procfsreader.ProcFsReader
	identifier *containerid.Identifier
	workers    int
}

var _ ContextResolver = (*Resolver)(nil)

func CreateResolver(reader procfsreader.ProcFsReader, identifier *containerid.Identifier, workers int) *Resolver {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Resolver{
		reader:     reader,
		identifier: identifier,
		workers:    workers,
	}
}

// ProcessContainerContext reads the namespace inode and the cgroup path independently, then
// derives the container id from whichever of them is present.
func (r *Resolver) ProcessContainerContext(pid int) ContainerContext {
	var cc ContainerContext

	inode, hasInode := r.reader.ReadCgroupNamespaceInode(pid)
	if hasInode {
		cc.CgroupNsInode = ptr.To(inode)
	}

	cgroupPath, hasPath := r.reader.ReadCgroupPath(pid)
	if hasPath {
		cc.CgroupPath = ptr.To(cgroupPath)
	}

	if id, ok := r.identifier.DeriveContainerID(cgroupPath, inode); ok {
		cc.ContainerID = ptr.To(id)
	}

	return cc
}

// ProcessContainerContexts resolves every pid on a bounded worker pool. Each lookup is
// independent; the returned error only reports pool failures or cancellation.
func (r *Resolver) ProcessContainerContexts(ctx context.Context, pids []int) (map[int]ContainerContext, error) {
	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[int]ContainerContext, len(pids))
	)

	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return results, err
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			cc := r.ProcessContainerContext(pid)
			mu.Lock()
			results[pid] = cc
			mu.Unlock()
		}); err != nil {
			wg.Done()
			logger.L().Warning("Resolver - failed to submit context lookup",
				helpers.Int("pid", pid),
				helpers.Error(err))
			wg.Wait()
			return results, fmt.Errorf("submitting lookup for pid %d: %w", pid, err)
		}
	}

	wg.Wait()
	return results, nil
}
