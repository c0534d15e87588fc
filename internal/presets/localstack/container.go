// Package localstack provides a ready-made configuration for LocalStack, the
// local AWS cloud emulator, and helpers to build endpoint URLs against it.
package localstack

import (
	"maps"
	"strings"

	"github.com/bnema/localcontainers/internal/domain"
)

const (
	// DefaultImage is the image used when none is given.
	DefaultImage = "localstack/localstack:latest"

	// DefaultGatewayPort is LocalStack's edge port serving every service.
	DefaultGatewayPort uint16 = 4566

	// ReadyMessage is logged by LocalStack once it accepts requests.
	ReadyMessage = "Ready."

	authTokenEnv = "LOCALSTACK_AUTH_TOKEN"
)

// Container describes a LocalStack instance.
type Container struct {
	Image       string
	Services    []string
	Environment map[string]string
	GatewayPort uint16
}

// Configuration builds the container configuration. DEBUG=1 is set unless an
// auth token is present or DEBUG is already given.
func (c Container) Configuration(opts ...domain.ConfigOption) domain.ContainerConfiguration {
	image := c.Image
	if image == "" {
		image = DefaultImage
	}

	env := maps.Clone(c.Environment)
	if env == nil {
		env = make(map[string]string)
	}
	if len(c.Services) > 0 {
		env["SERVICES"] = strings.Join(c.Services, ",")
	}
	if _, ok := env[authTokenEnv]; !ok {
		if _, ok := env["DEBUG"]; !ok {
			env["DEBUG"] = "1"
		}
	}

	base := []domain.ConfigOption{
		domain.WithPort(c.gatewayPort()),
		domain.WithEnv(env),
		domain.WithWaitStrategy(domain.WaitForLog(ReadyMessage)),
	}
	return domain.NewConfiguration(image, append(base, opts...)...)
}

// Spec wraps the configuration in a container spec under key.
func (c Container) Spec(key string, setups ...domain.Setup) domain.ContainerSpec {
	return domain.ContainerSpec{
		Key:           key,
		Configuration: c.Configuration(),
		Setups:        setups,
	}
}

func (c Container) gatewayPort() uint16 {
	if c.GatewayPort == 0 {
		return DefaultGatewayPort
	}
	return c.GatewayPort
}
