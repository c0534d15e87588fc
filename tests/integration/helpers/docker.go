// Package helpers provides Docker-related test utilities.
package helpers

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/docker/client"
)

const (
	// NginxImage serves HTTP on port 80 and is small enough to pull quickly.
	NginxImage = "nginx:alpine"

	// AlpineImage runs shell one-liners for log and health scenarios.
	AlpineImage = "alpine:3.20"
)

// DetectDockerHost returns DOCKER_HOST, the system socket when present,
// or the rootless socket of the current user.
func DetectDockerHost() string {
	if host := os.Getenv("DOCKER_HOST"); host != "" {
		return host
	}
	if _, err := os.Stat("/var/run/docker.sock"); err == nil {
		return "unix:///var/run/docker.sock"
	}
	return fmt.Sprintf("unix:///run/user/%d/docker.sock", os.Getuid())
}

// GetDockerSocketPath returns the host path of the Docker socket.
func GetDockerSocketPath() string {
	return strings.TrimPrefix(DetectDockerHost(), "unix://")
}

// NewDockerClient returns an SDK client used to observe the engine
// independently of the code under test.
func NewDockerClient() (*client.Client, error) {
	cli, err := client.NewClientWithOpts(
		client.WithHost(DetectDockerHost()),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return cli, nil
}
