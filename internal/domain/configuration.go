package domain

import (
	"maps"
	"slices"
	"time"
)

// DefaultWaitTimeout bounds readiness waits when a configuration sets none.
const DefaultWaitTimeout = 60 * time.Second

// Protocol is the transport protocol of a published port.
type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// PortMapping declares a port to publish before start.
// A zero HostPort lets the daemon pick an ephemeral port.
type PortMapping struct {
	ContainerPort uint16
	HostPort      uint16
	Protocol      Protocol
}

// VolumeMount binds a host path into the container.
type VolumeMount struct {
	HostPath      string
	ContainerPath string
	ReadOnly      bool
}

// ContainerConfiguration describes a container before it is started.
// Build it with NewConfiguration and treat it as read-only afterwards:
// it is shared by value across concurrent polling goroutines.
type ContainerConfiguration struct {
	Image        string
	Ports        []PortMapping
	Environment  map[string]string
	Volumes      []VolumeMount
	Name         string
	Command      []string
	WaitStrategy WaitStrategy
	HealthCheck  *HealthCheckConfig
	WaitTimeout  time.Duration
}

// ConfigOption configures a ContainerConfiguration.
type ConfigOption func(*ContainerConfiguration)

// NewConfiguration builds a configuration for image.
// Defaults: port wait strategy, DefaultWaitTimeout.
func NewConfiguration(image string, opts ...ConfigOption) ContainerConfiguration {
	cfg := ContainerConfiguration{
		Image:        image,
		Environment:  map[string]string{},
		WaitStrategy: WaitForPort(),
		WaitTimeout:  DefaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPorts appends port mappings, skipping exact duplicates.
func WithPorts(ports ...PortMapping) ConfigOption {
	return func(c *ContainerConfiguration) {
		for _, p := range ports {
			if p.Protocol == "" {
				p.Protocol = ProtocolTCP
			}
			if !slices.Contains(c.Ports, p) {
				c.Ports = append(c.Ports, p)
			}
		}
	}
}

// WithPort publishes a TCP container port on an ephemeral host port.
func WithPort(containerPort uint16) ConfigOption {
	return WithPorts(PortMapping{ContainerPort: containerPort, Protocol: ProtocolTCP})
}

// WithEnv merges environment variables; later keys overwrite earlier ones.
func WithEnv(env map[string]string) ConfigOption {
	return func(c *ContainerConfiguration) {
		if c.Environment == nil {
			c.Environment = make(map[string]string, len(env))
		}
		maps.Copy(c.Environment, env)
	}
}

// WithVolumes appends volume mounts.
func WithVolumes(volumes ...VolumeMount) ConfigOption {
	return func(c *ContainerConfiguration) {
		c.Volumes = append(slices.Clone(c.Volumes), volumes...)
	}
}

// WithName sets the container name.
func WithName(name string) ConfigOption {
	return func(c *ContainerConfiguration) {
		c.Name = name
	}
}

// WithCommand overrides the image command.
func WithCommand(cmd ...string) ConfigOption {
	return func(c *ContainerConfiguration) {
		c.Command = slices.Clone(cmd)
	}
}

// WithWaitStrategy sets the readiness strategy.
func WithWaitStrategy(s WaitStrategy) ConfigOption {
	return func(c *ContainerConfiguration) {
		c.WaitStrategy = s
	}
}

// WithHealthCheck attaches an engine health check.
func WithHealthCheck(hc HealthCheckConfig) ConfigOption {
	return func(c *ContainerConfiguration) {
		hc.Test = slices.Clone(hc.Test)
		c.HealthCheck = &hc
	}
}

// WithWaitTimeout sets the overall readiness timeout.
func WithWaitTimeout(d time.Duration) ConfigOption {
	return func(c *ContainerConfiguration) {
		c.WaitTimeout = d
	}
}

// EffectiveWaitTimeout returns WaitTimeout, or DefaultWaitTimeout when unset.
func (c ContainerConfiguration) EffectiveWaitTimeout() time.Duration {
	if c.WaitTimeout <= 0 {
		return DefaultWaitTimeout
	}
	return c.WaitTimeout
}

// EffectiveWaitStrategy returns WaitStrategy, or the port strategy when unset.
func (c ContainerConfiguration) EffectiveWaitStrategy() WaitStrategy {
	if c.WaitStrategy == nil {
		return WaitForPort()
	}
	return c.WaitStrategy
}

// HealthCheckConfig is an engine-side health check.
// Durations stay as time.Duration until the engine request is built.
type HealthCheckConfig struct {
	Test        []string
	Interval    time.Duration
	Timeout     time.Duration
	Retries     int
	StartPeriod time.Duration
}

// NewHealthCheck returns a health check running test with the default
// interval (10s), timeout (5s), and retries (3).
func NewHealthCheck(test ...string) HealthCheckConfig {
	return HealthCheckConfig{
		Test:     slices.Clone(test),
		Interval: 10 * time.Second,
		Timeout:  5 * time.Second,
		Retries:  3,
	}
}
