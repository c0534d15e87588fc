// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import (
	"net"
	"slices"
	"strconv"
)

// DefaultHost is the address tests use to reach published ports.
const DefaultHost = "127.0.0.1"

// ResolvedPortMapping is the host port the engine actually bound for a
// container port. It only exists after inspection.
type ResolvedPortMapping struct {
	ContainerPort uint16
	HostPort      uint16
	Protocol      Protocol
}

// RunningContainer is a value snapshot of a started container.
// The runtime owns the actual container; copies are cheap and never mutated.
type RunningContainer struct {
	ID    string
	Name  string
	Image string
	Host  string
	Ports []ResolvedPortMapping
}

// MappedPort returns the host port published for containerPort.
func (c RunningContainer) MappedPort(containerPort uint16) (uint16, error) {
	for _, p := range c.Ports {
		if p.ContainerPort == containerPort {
			return p.HostPort, nil
		}
	}
	return 0, PortNotFound(containerPort)
}

// Address returns the host:port pair to dial for containerPort.
func (c RunningContainer) Address(containerPort uint16) (string, error) {
	hostPort, err := c.MappedPort(containerPort)
	if err != nil {
		return "", err
	}
	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	return net.JoinHostPort(host, strconv.Itoa(int(hostPort))), nil
}

// ShortID returns the 12-character form of the container ID.
func (c RunningContainer) ShortID() string {
	if len(c.ID) > 12 {
		return c.ID[:12]
	}
	return c.ID
}

// Equal reports whether both snapshots carry the same field values.
func (c RunningContainer) Equal(other RunningContainer) bool {
	return c.ID == other.ID &&
		c.Name == other.Name &&
		c.Image == other.Image &&
		c.Host == other.Host &&
		slices.Equal(c.Ports, other.Ports)
}

// HealthStatus is the health state reported by the engine.
type HealthStatus string

const (
	HealthStatusHealthy       HealthStatus = "healthy"
	HealthStatusUnhealthy     HealthStatus = "unhealthy"
	HealthStatusStarting      HealthStatus = "starting"
	HealthStatusNotConfigured HealthStatus = "notConfigured"
)

// ContainerInspection is a transient read of a container's current state.
// It is recomputed on every inspect call.
type ContainerInspection struct {
	IsRunning    bool
	HealthStatus HealthStatus
}
