package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/localcontainers/internal/boundaries/in"
	"github.com/bnema/localcontainers/internal/domain"
)

type sharedEntry struct {
	spec      domain.ContainerSpec
	container domain.RunningContainer
}

// SharedManager keeps one container per spec key for the life of a process,
// so expensive containers start once and are reused by every test.
// Concurrent first requests for the same key share a single launch.
type SharedManager struct {
	lifecycle  in.LifecycleService
	group      singleflight.Group
	mu         sync.RWMutex
	containers map[string]sharedEntry
	order      []string

	// generation is bumped by ShutdownAll; a launch that started in an
	// older generation removes its own container instead of caching it.
	generation uint64
	launching  map[string]chan struct{}
}

// NewSharedManager creates an empty shared container cache.
func NewSharedManager(lifecycle in.LifecycleService) *SharedManager {
	return &SharedManager{
		lifecycle:  lifecycle,
		containers: make(map[string]sharedEntry),
		launching:  make(map[string]chan struct{}),
	}
}

// Get returns the container for spec.Key, launching it on first use.
// The launch is not tied to the caller's context: a caller that gives up
// stops waiting, while the others keep sharing the same launch.
func (m *SharedManager) Get(ctx context.Context, spec domain.ContainerSpec) (domain.RunningContainer, error) {
	if spec.Key == "" {
		return domain.RunningContainer{}, domain.RuntimeError("shared container spec has no key")
	}

	if c, ok := m.lookup(spec.Key); ok {
		return c, nil
	}

	launchCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(spec.Key, func() (any, error) {
		return m.launch(launchCtx, spec)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.RunningContainer{}, res.Err
		}
		return res.Val.(domain.RunningContainer), nil
	case <-ctx.Done():
		return domain.RunningContainer{}, ctx.Err()
	}
}

func (m *SharedManager) launch(ctx context.Context, spec domain.ContainerSpec) (domain.RunningContainer, error) {
	log := zerowrap.FromCtx(ctx)

	m.mu.Lock()
	if entry, ok := m.containers[spec.Key]; ok {
		m.mu.Unlock()
		return entry.container, nil
	}
	generation := m.generation
	done := make(chan struct{})
	m.launching[spec.Key] = done
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.launching, spec.Key)
		m.mu.Unlock()
		close(done)
	}()

	log.Info().
		Str("key", spec.Key).
		Str("image", spec.Configuration.Image).
		Msg("starting shared container")

	c, err := m.lifecycle.Launch(ctx, spec)
	if err != nil {
		return domain.RunningContainer{}, err
	}

	m.mu.Lock()
	if m.generation != generation {
		m.mu.Unlock()

		log.Warn().Str(zerowrap.FieldEntityID, c.ID).Str("key", spec.Key).Msg("shut down during launch, removing container")
		if err := m.lifecycle.Teardown(ctx, spec, c); err != nil {
			log.Warn().Err(err).Str(zerowrap.FieldEntityID, c.ID).Msg("failed to clean up container")
		}
		return domain.RunningContainer{}, domain.RuntimeError(fmt.Sprintf("shared container %q was shut down while starting", spec.Key))
	}
	m.containers[spec.Key] = sharedEntry{spec: spec, container: c}
	m.order = append(m.order, spec.Key)
	m.mu.Unlock()

	return c, nil
}

func (m *SharedManager) lookup(key string) (domain.RunningContainer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.containers[key]
	return entry.container, ok
}

// Context resolves every spec and returns a TestContext over them.
func (m *SharedManager) Context(ctx context.Context, specs ...domain.ContainerSpec) (*TestContext, error) {
	resolved := make(map[string]domain.RunningContainer, len(specs))
	for _, spec := range specs {
		c, err := m.Get(ctx, spec)
		if err != nil {
			return nil, err
		}
		resolved[spec.Key] = c
	}
	return NewTestContext(resolved), nil
}

// Keys lists cached keys in launch order.
func (m *SharedManager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order)
}

// ShutdownAll tears down every cached container, most recent first, and
// empties the cache. Launches still in flight remove their own container
// when they finish; ShutdownAll waits for them until ctx is done.
// Failures are logged and returned joined.
func (m *SharedManager) ShutdownAll(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ShutdownAll",
	})
	log := zerowrap.FromCtx(ctx)

	m.mu.Lock()
	m.generation++
	entries := make([]sharedEntry, 0, len(m.order))
	for _, key := range m.order {
		entries = append(entries, m.containers[key])
	}
	pending := make([]chan struct{}, 0, len(m.launching))
	for _, done := range m.launching {
		pending = append(pending, done)
	}
	m.containers = make(map[string]sharedEntry)
	m.order = nil
	m.mu.Unlock()

	var errs []error
	for _, entry := range slices.Backward(entries) {
		if err := m.lifecycle.Teardown(ctx, entry.spec, entry.container); err != nil {
			log.Warn().Err(err).Str(zerowrap.FieldEntityID, entry.container.ID).Msg("failed to clean up container")
			errs = append(errs, err)
		}
	}

	if err := waitLaunches(ctx, pending); err != nil {
		log.Warn().Err(err).Int(zerowrap.FieldCount, len(pending)).Msg("gave up waiting for launches in flight")
		errs = append(errs, err)
	}

	log.Info().Int(zerowrap.FieldCount, len(entries)).Msg("shared containers shut down")
	return errors.Join(errs...)
}

func waitLaunches(ctx context.Context, pending []chan struct{}) error {
	for _, done := range pending {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
