package localstack

import (
	"github.com/bnema/localcontainers/internal/domain"
)

// Endpoint builds AWS endpoint URLs for a running LocalStack container.
type Endpoint struct {
	container   domain.RunningContainer
	gatewayPort uint16
}

// NewEndpoint creates endpoint helpers for c. A zero gatewayPort means 4566.
func NewEndpoint(c domain.RunningContainer, gatewayPort uint16) Endpoint {
	if gatewayPort == 0 {
		gatewayPort = DefaultGatewayPort
	}
	return Endpoint{container: c, gatewayPort: gatewayPort}
}

// Gateway returns the gateway URL, e.g. http://127.0.0.1:32771.
func (e Endpoint) Gateway() (string, error) {
	address, err := e.container.Address(e.gatewayPort)
	if err != nil {
		return "", err
	}
	return "http://" + address, nil
}

// AWS returns the URL to give AWS SDKs as their endpoint override.
func (e Endpoint) AWS() (string, error) {
	return e.Gateway()
}

// Service returns the endpoint for one AWS service. LocalStack routes every
// service through the gateway, so this is the gateway URL.
func (e Endpoint) Service(string) (string, error) {
	return e.Gateway()
}
