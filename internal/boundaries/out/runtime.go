// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, TCP probing, spec files).
package out

import (
	"context"

	"github.com/bnema/localcontainers/internal/domain"
)

// ContainerRuntime defines the contract for container lifecycle operations.
// Backends are selected at construction time; only the Docker Engine API
// backend exists today.
type ContainerRuntime interface {
	// PullImage makes the image available locally.
	PullImage(ctx context.Context, reference string) error

	// StartContainer creates and starts a container, then resolves its ports.
	StartContainer(ctx context.Context, cfg domain.ContainerConfiguration) (domain.RunningContainer, error)

	// StopContainer stops a container. Stopping a stopped container succeeds.
	StopContainer(ctx context.Context, c domain.RunningContainer) error

	// RemoveContainer removes a container and its anonymous resources.
	RemoveContainer(ctx context.Context, c domain.RunningContainer) error

	// InspectContainer reads the container's current state.
	InspectContainer(ctx context.Context, c domain.RunningContainer) (domain.ContainerInspection, error)

	// ContainerLogs returns stdout and stderr as plain text.
	ContainerLogs(ctx context.Context, c domain.RunningContainer) (string, error)
}
