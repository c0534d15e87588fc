package docker

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/docker/go-connections/nat"

	"github.com/bnema/localcontainers/internal/domain"
)

// ResolvePorts flattens an inspected port map into resolved mappings.
// Unpublished ports and bindings without a numeric host port are skipped.
// Identical mappings (e.g. the IPv4 and IPv6 binding of one port) appear once.
func ResolvePorts(portMap nat.PortMap) []domain.ResolvedPortMapping {
	var resolved []domain.ResolvedPortMapping

	for port, bindings := range portMap {
		if bindings == nil {
			continue
		}

		containerPort, err := strconv.ParseUint(port.Port(), 10, 16)
		if err != nil {
			continue
		}

		protocol := domain.ProtocolTCP
		if port.Proto() == string(domain.ProtocolUDP) {
			protocol = domain.ProtocolUDP
		}

		for _, binding := range bindings {
			hostPort, err := strconv.ParseUint(binding.HostPort, 10, 16)
			if err != nil {
				continue
			}
			mapping := domain.ResolvedPortMapping{
				ContainerPort: uint16(containerPort),
				HostPort:      uint16(hostPort),
				Protocol:      protocol,
			}
			if !slices.Contains(resolved, mapping) {
				resolved = append(resolved, mapping)
			}
		}
	}

	slices.SortFunc(resolved, func(a, b domain.ResolvedPortMapping) int {
		return cmp.Or(
			cmp.Compare(a.ContainerPort, b.ContainerPort),
			cmp.Compare(a.Protocol, b.Protocol),
			cmp.Compare(a.HostPort, b.HostPort),
		)
	})

	return resolved
}
