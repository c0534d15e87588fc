// Package docker implements the container runtime adapter on the Docker
// Engine API, spoken directly over the daemon's Unix socket.
package docker

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"

	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

// DefaultStopTimeout is the grace period given to a container before it is killed.
const DefaultStopTimeout = 10 * time.Second

// bindAddress publishes ports on every host interface.
const bindAddress = "0.0.0.0"

var _ out.ContainerRuntime = (*Runtime)(nil)

// Runtime implements the ContainerRuntime interface using the Engine API.
type Runtime struct {
	client      *Client
	hostAddress string
	stopTimeout time.Duration
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithHostAddress sets the address tests use to reach published ports.
func WithHostAddress(host string) RuntimeOption {
	return func(r *Runtime) {
		r.hostAddress = host
	}
}

// WithStopTimeout sets the stop grace period.
func WithStopTimeout(timeout time.Duration) RuntimeOption {
	return func(r *Runtime) {
		r.stopTimeout = timeout
	}
}

// NewRuntime creates a new Docker runtime on top of client.
func NewRuntime(client *Client, opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		client:      client,
		hostAddress: domain.DefaultHost,
		stopTimeout: DefaultStopTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PullImage makes reference available locally.
func (r *Runtime) PullImage(ctx context.Context, reference string) error {
	return r.client.PullImage(ctx, reference)
}

// StartContainer creates and starts a container, then inspects it once to
// resolve the published ports and the daemon-assigned name.
func (r *Runtime) StartContainer(ctx context.Context, cfg domain.ContainerConfiguration) (domain.RunningContainer, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "StartContainer",
		"container_name":      cfg.Name,
		"image":               cfg.Image,
	})
	log := zerowrap.FromCtx(ctx)

	created, err := r.client.CreateContainer(ctx, BuildCreateRequest(cfg), cfg.Name)
	if err != nil {
		return domain.RunningContainer{}, err
	}
	if created.ID == "" {
		return domain.RunningContainer{}, domain.StartFailed("engine returned an empty container id")
	}

	log.Info().Str(zerowrap.FieldEntityID, created.ID).Msg("container created")

	if err := r.client.StartContainer(ctx, created.ID); err != nil {
		r.discard(ctx, created.ID)
		return domain.RunningContainer{}, err
	}

	inspected, err := r.client.InspectContainer(ctx, created.ID)
	if err != nil {
		r.discard(ctx, created.ID)
		return domain.RunningContainer{}, err
	}

	running := r.snapshot(created.ID, inspected)
	running.Image = cfg.Image
	running.Ports = orderPorts(cfg.Ports, running.Ports)

	log.Info().
		Str(zerowrap.FieldEntityID, created.ID).
		Str("name", running.Name).
		Int("ports", len(running.Ports)).
		Msg("container started")

	return running, nil
}

// Lookup builds a snapshot of an existing container from its id or name.
func (r *Runtime) Lookup(ctx context.Context, id string) (domain.RunningContainer, error) {
	inspected, err := r.client.InspectContainer(ctx, id)
	if err != nil {
		return domain.RunningContainer{}, err
	}

	running := r.snapshot(id, inspected)
	if inspected.ContainerJSONBase != nil && inspected.ID != "" {
		running.ID = inspected.ID
	}
	if inspected.Config != nil {
		running.Image = inspected.Config.Image
	}
	return running, nil
}

func (r *Runtime) snapshot(id string, inspected container.InspectResponse) domain.RunningContainer {
	running := domain.RunningContainer{ID: id, Host: r.hostAddress}
	if inspected.ContainerJSONBase != nil {
		running.Name = strings.TrimPrefix(inspected.Name, "/")
	}
	if inspected.NetworkSettings != nil {
		running.Ports = ResolvePorts(inspected.NetworkSettings.Ports)
	}
	return running
}

// discard removes a container that failed half-way through starting.
func (r *Runtime) discard(ctx context.Context, id string) {
	if err := r.client.RemoveContainer(context.WithoutCancel(ctx), id, true); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str(zerowrap.FieldEntityID, id).Msg("failed to remove container after start failure")
	}
}

// StopContainer stops c. Stopping a stopped container succeeds.
func (r *Runtime) StopContainer(ctx context.Context, c domain.RunningContainer) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StopContainer",
		zerowrap.FieldEntityID: c.ID,
	})

	if err := r.client.StopContainer(ctx, c.ID, r.stopTimeout); err != nil {
		return err
	}

	log := zerowrap.FromCtx(ctx)
	log.Info().Msg("container stopped")
	return nil
}

// RemoveContainer force-removes c and its anonymous volumes.
func (r *Runtime) RemoveContainer(ctx context.Context, c domain.RunningContainer) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "RemoveContainer",
		zerowrap.FieldEntityID: c.ID,
	})

	if err := r.client.RemoveContainer(ctx, c.ID, true); err != nil {
		return err
	}

	log := zerowrap.FromCtx(ctx)
	log.Info().Msg("container removed")
	return nil
}

// InspectContainer reads the current run state and health of c.
func (r *Runtime) InspectContainer(ctx context.Context, c domain.RunningContainer) (domain.ContainerInspection, error) {
	inspected, err := r.client.InspectContainer(ctx, c.ID)
	if err != nil {
		return domain.ContainerInspection{}, err
	}

	inspection := domain.ContainerInspection{HealthStatus: domain.HealthStatusNotConfigured}
	if inspected.ContainerJSONBase == nil || inspected.State == nil {
		return inspection, nil
	}

	inspection.IsRunning = inspected.State.Running
	if inspected.State.Health != nil {
		inspection.HealthStatus = translateHealth(string(inspected.State.Health.Status))
	}
	return inspection, nil
}

// ContainerLogs returns the combined stdout and stderr of c.
func (r *Runtime) ContainerLogs(ctx context.Context, c domain.RunningContainer) (string, error) {
	return r.client.ContainerLogs(ctx, c.ID)
}

func translateHealth(status string) domain.HealthStatus {
	switch status {
	case "healthy":
		return domain.HealthStatusHealthy
	case "unhealthy":
		return domain.HealthStatusUnhealthy
	case "starting":
		return domain.HealthStatusStarting
	default:
		return domain.HealthStatusNotConfigured
	}
}

// BuildCreateRequest translates a configuration into an engine create body.
func BuildCreateRequest(cfg domain.ContainerConfiguration) container.CreateRequest {
	exposedPorts := make(nat.PortSet, len(cfg.Ports))
	portBindings := make(nat.PortMap, len(cfg.Ports))

	for _, p := range cfg.Ports {
		protocol := p.Protocol
		if protocol == "" {
			protocol = domain.ProtocolTCP
		}
		port := nat.Port(fmt.Sprintf("%d/%s", p.ContainerPort, protocol))
		exposedPorts[port] = struct{}{}

		hostPort := ""
		if p.HostPort != 0 {
			hostPort = strconv.Itoa(int(p.HostPort))
		}
		portBindings[port] = append(portBindings[port], nat.PortBinding{
			HostIP:   bindAddress,
			HostPort: hostPort,
		})
	}

	var binds []string
	for _, v := range cfg.Volumes {
		bind := v.HostPath + ":" + v.ContainerPath
		if v.ReadOnly {
			bind += ":ro"
		}
		binds = append(binds, bind)
	}

	config := &container.Config{
		Image:        cfg.Image,
		Env:          envList(cfg.Environment),
		ExposedPorts: exposedPorts,
	}
	if len(cfg.Command) > 0 {
		config.Cmd = slices.Clone(cfg.Command)
	}
	if hc := cfg.HealthCheck; hc != nil {
		config.Healthcheck = &container.HealthConfig{
			Test:        slices.Clone(hc.Test),
			Interval:    hc.Interval,
			Timeout:     hc.Timeout,
			StartPeriod: hc.StartPeriod,
			Retries:     hc.Retries,
		}
	}

	return container.CreateRequest{
		Config: config,
		HostConfig: &container.HostConfig{
			PortBindings: portBindings,
			Binds:        binds,
		},
	}
}

// envList renders the environment as KEY=VALUE entries sorted by key.
func envList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+env[k])
	}
	return list
}

// orderPorts lists resolved ports in the order they were requested.
// Ports the engine published on its own follow at the end.
func orderPorts(requested []domain.PortMapping, resolved []domain.ResolvedPortMapping) []domain.ResolvedPortMapping {
	ordered := make([]domain.ResolvedPortMapping, 0, len(resolved))
	taken := make([]bool, len(resolved))

	for _, req := range requested {
		protocol := req.Protocol
		if protocol == "" {
			protocol = domain.ProtocolTCP
		}
		for i, res := range resolved {
			if taken[i] || res.ContainerPort != req.ContainerPort || res.Protocol != protocol {
				continue
			}
			if req.HostPort != 0 && res.HostPort != req.HostPort {
				continue
			}
			ordered = append(ordered, res)
			taken[i] = true
		}
	}

	for i, res := range resolved {
		if !taken[i] {
			ordered = append(ordered, res)
		}
	}
	return ordered
}
