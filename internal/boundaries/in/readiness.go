// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI, tests)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

// ReadinessService blocks until a started container is usable.
type ReadinessService interface {
	// WaitUntilReady applies the configuration's wait strategy to c.
	// It returns nil once ready, or a domain error (timeout, unhealthy,
	// missing port) otherwise.
	WaitUntilReady(ctx context.Context, c domain.RunningContainer, cfg domain.ContainerConfiguration, runtime out.ContainerRuntime) error
}
