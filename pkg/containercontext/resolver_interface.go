package containercontext

import "context"

type ContextResolver interface {
	ProcessContainerContext(pid int) ContainerContext
	ProcessContainerContexts(ctx context.Context, pids []int) (map[int]ContainerContext, error)
}
