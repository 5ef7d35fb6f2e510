package containercontext

import "context"

// ResolverMock returns preset contexts; unknown pids get an empty context.
type ResolverMock struct {
	Contexts map[int]ContainerContext
}

var _ ContextResolver = (*ResolverMock)(nil)

func CreateResolverMock() *ResolverMock {
	return &ResolverMock{Contexts: map[int]ContainerContext{}}
}

func (m *ResolverMock) ProcessContainerContext(pid int) ContainerContext {
	return m.Contexts[pid]
}

func (m *ResolverMock) ProcessContainerContexts(_ context.Context, pids []int) (map[int]ContainerContext, error) {
	results := make(map[int]ContainerContext, len(pids))
	for _, pid := range pids {
		results[pid] = m.Contexts[pid]
	}
	return results, nil
}
