package in

import (
	"context"

	"github.com/bnema/localcontainers/internal/domain"
)

// LifecycleService runs a container spec from pull to teardown.
type LifecycleService interface {
	// Launch takes the spec's container from pull to ready and runs its setups.
	Launch(ctx context.Context, spec domain.ContainerSpec) (domain.RunningContainer, error)

	// Teardown runs setup teardowns in reverse order, then stops and removes c.
	Teardown(ctx context.Context, spec domain.ContainerSpec, c domain.RunningContainer) error
}
