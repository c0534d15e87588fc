package specfile

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"

	"github.com/bnema/localcontainers/internal/domain"
)

// ParsePorts converts docker-style publish specs ("80", "8080:80",
// "127.0.0.1:5353:53/udp", "8000-8001:80-81") into port mappings.
// Host addresses are accepted but not kept; ports are always published on
// every interface.
func ParsePorts(specs ...string) ([]domain.PortMapping, error) {
	var ports []domain.PortMapping
	for _, spec := range specs {
		mappings, err := nat.ParsePortSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: port %q: %v", ErrInvalidSpec, spec, err)
		}

		for _, m := range mappings {
			containerPort := m.Port.Int()
			if containerPort <= 0 || containerPort > 65535 {
				return nil, fmt.Errorf("%w: port %q: container port out of range", ErrInvalidSpec, spec)
			}

			mapping := domain.PortMapping{
				ContainerPort: uint16(containerPort),
				Protocol:      domain.ProtocolTCP,
			}
			switch m.Port.Proto() {
			case "tcp":
			case "udp":
				mapping.Protocol = domain.ProtocolUDP
			default:
				return nil, fmt.Errorf("%w: port %q: unsupported protocol %s", ErrInvalidSpec, spec, m.Port.Proto())
			}

			if m.Binding.HostPort != "" {
				hostPort, err := strconv.ParseUint(m.Binding.HostPort, 10, 16)
				if err != nil {
					return nil, fmt.Errorf("%w: port %q: invalid host port", ErrInvalidSpec, spec)
				}
				mapping.HostPort = uint16(hostPort)
			}

			ports = append(ports, mapping)
		}
	}
	return ports, nil
}

// ParseVolumes converts "host:container[:ro|rw]" bind specs into mounts.
// Host paths starting with "." resolve against baseDir; other relative
// sources are passed through as named volumes.
func ParseVolumes(baseDir string, specs ...string) ([]domain.VolumeMount, error) {
	var volumes []domain.VolumeMount
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: volume %q: expected host:container[:ro]", ErrInvalidSpec, spec)
		}

		mount := domain.VolumeMount{HostPath: parts[0], ContainerPath: parts[1]}
		if len(parts) == 3 {
			switch parts[2] {
			case "ro":
				mount.ReadOnly = true
			case "rw":
			default:
				return nil, fmt.Errorf("%w: volume %q: unknown mode %q", ErrInvalidSpec, spec, parts[2])
			}
		}

		if strings.HasPrefix(mount.HostPath, ".") && baseDir != "" {
			mount.HostPath = filepath.Join(baseDir, mount.HostPath)
		}
		volumes = append(volumes, mount)
	}
	return volumes, nil
}

// ParseWaitStrategy maps a strategy name onto a wait strategy. An empty name
// means port. message is required by "log"; delay is used by "delay".
func ParseWaitStrategy(name, message string, delay time.Duration) (domain.WaitStrategy, error) {
	switch strings.ToLower(name) {
	case "", "port":
		return domain.WaitForPort(), nil
	case "health", "healthcheck":
		return domain.WaitForHealthCheck(), nil
	case "log":
		if message == "" {
			return nil, fmt.Errorf("%w: log wait needs a message", ErrInvalidSpec)
		}
		return domain.WaitForLog(message), nil
	case "delay":
		return domain.WaitFixedDelay(delay), nil
	default:
		return nil, fmt.Errorf("%w: unknown wait strategy %q", ErrInvalidSpec, name)
	}
}
