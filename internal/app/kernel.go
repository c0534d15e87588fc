package app

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/localcontainers/internal/adapters/out/docker"
	"github.com/bnema/localcontainers/internal/adapters/out/envloader"
	"github.com/bnema/localcontainers/internal/adapters/out/specfile"
	"github.com/bnema/localcontainers/internal/adapters/out/tcpprober"
	"github.com/bnema/localcontainers/internal/boundaries/in"
	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/internal/usecase/lifecycle"
	"github.com/bnema/localcontainers/internal/usecase/readiness"
)

// Kernel wires the runtime, readiness and lifecycle services for local use.
//
// Nothing is dialed at construction; the first engine call opens the socket.
type Kernel struct {
	cfg       Config
	log       zerowrap.Logger
	transport *docker.Transport
	client    *docker.Client
	runtime   *docker.Runtime
	readiness *readiness.Service
	lifecycle *lifecycle.Service
	shared    *lifecycle.SharedManager
	specs     *specfile.Loader
	envs      *envloader.FileLoader
	cleanup   func()
}

// NewKernel loads configuration from configPath (or the default search
// paths when empty) and builds every service.
func NewKernel(configPath string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}

	k, err := NewKernelFromConfig(cfg, log)
	if err != nil {
		if cleanup != nil {
			cleanup()
		}
		return nil, err
	}
	if cleanup != nil {
		k.cleanup = cleanup
	}
	return k, nil
}

// NewKernelFromConfig builds every service from an already loaded cfg.
func NewKernelFromConfig(cfg Config, log zerowrap.Logger) (*Kernel, error) {
	transport, err := docker.NewTransport(cfg.Docker.Socket,
		docker.WithAPIVersion(cfg.Docker.APIVersion),
		docker.WithRequestTimeout(cfg.Docker.RequestTimeout),
	)
	if err != nil {
		return nil, log.WrapErr(err, "failed to create engine transport")
	}

	client := docker.NewClient(transport, docker.WithPullTimeout(cfg.Docker.PullTimeout))
	runtime := docker.NewRuntime(client,
		docker.WithHostAddress(cfg.Docker.HostAddress),
		docker.WithStopTimeout(cfg.Docker.StopTimeout),
	)

	prober := tcpprober.New(tcpprober.WithTimeout(cfg.Wait.ProbeTimeout))
	readinessSvc := readiness.NewService(prober,
		readiness.WithPortInterval(cfg.Wait.PortInterval),
		readiness.WithPollInterval(cfg.Wait.PollInterval),
	)
	lifecycleSvc := lifecycle.NewService(runtime, readinessSvc, lifecycle.Config{SkipPull: cfg.Docker.SkipPull})

	log.Debug().
		Str("socket", transport.SocketPath()).
		Str("api_version", transport.APIVersion()).
		Msg("kernel initialized")

	return &Kernel{
		cfg:       cfg,
		log:       log,
		transport: transport,
		client:    client,
		runtime:   runtime,
		readiness: readinessSvc,
		lifecycle: lifecycleSvc,
		shared:    lifecycle.NewSharedManager(lifecycleSvc),
		specs:     specfile.NewLoader(),
		envs:      envloader.NewFileLoader(""),
		cleanup:   func() {},
	}, nil
}

// Close releases idle engine connections and flushes file logging.
func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}
	k.transport.Close()
	if k.cleanup != nil {
		k.cleanup()
	}
	return nil
}

// Context attaches the kernel logger to ctx.
func (k *Kernel) Context(ctx context.Context) context.Context {
	return zerowrap.WithCtx(ctx, k.log)
}

// WithSkipPull returns a lifecycle service that never pulls images.
func (k *Kernel) WithSkipPull(skip bool) in.LifecycleService {
	if skip == k.cfg.Docker.SkipPull {
		return k.lifecycle
	}
	return lifecycle.NewService(k.runtime, k.readiness, lifecycle.Config{SkipPull: skip})
}

// Lookup inspects an existing container by id or name.
func (k *Kernel) Lookup(ctx context.Context, id string) (domain.RunningContainer, error) {
	return k.runtime.Lookup(ctx, id)
}

func (k *Kernel) Config() Config { return k.cfg }

func (k *Kernel) Client() *docker.Client { return k.client }

func (k *Kernel) Runtime() out.ContainerRuntime { return k.runtime }

func (k *Kernel) Readiness() in.ReadinessService { return k.readiness }

func (k *Kernel) Lifecycle() in.LifecycleService { return k.lifecycle }

func (k *Kernel) Shared() *lifecycle.SharedManager { return k.shared }

func (k *Kernel) Specs() out.SpecLoader { return k.specs }

func (k *Kernel) Env() out.EnvLoader { return k.envs }
