// Package readiness implements the wait-until-ready use case for started containers.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/localcontainers/internal/boundaries/in"
	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

const (
	// DefaultPortInterval is the pause between two TCP probes.
	DefaultPortInterval = 500 * time.Millisecond

	// DefaultPollInterval is the pause between two inspect or log reads.
	DefaultPollInterval = time.Second
)

var _ in.ReadinessService = (*Service)(nil)

// condition reports whether the container is ready. A non-nil error aborts
// the wait.
type condition func(ctx context.Context) (bool, error)

// Service implements the ReadinessService interface.
type Service struct {
	prober       out.TCPProber
	portInterval time.Duration
	pollInterval time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithPortInterval sets the pause between TCP probes.
func WithPortInterval(d time.Duration) Option {
	return func(s *Service) {
		s.portInterval = d
	}
}

// WithPollInterval sets the pause between health and log polls.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		s.pollInterval = d
	}
}

// NewService creates a new readiness service probing ports with prober.
func NewService(prober out.TCPProber, opts ...Option) *Service {
	s := &Service{
		prober:       prober,
		portInterval: DefaultPortInterval,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WaitUntilReady blocks until c satisfies the configuration's wait strategy.
func (s *Service) WaitUntilReady(ctx context.Context, c domain.RunningContainer, cfg domain.ContainerConfiguration, runtime out.ContainerRuntime) error {
	strategy := cfg.EffectiveWaitStrategy()
	timeout := cfg.EffectiveWaitTimeout()

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "WaitUntilReady",
		zerowrap.FieldEntityID: c.ID,
		"strategy":             strategy.Name(),
	})
	log := zerowrap.FromCtx(ctx)

	start := time.Now()
	log.Debug().Dur("timeout", timeout).Msg("waiting for container")

	var err error
	switch st := strategy.(type) {
	case domain.PortWait:
		err = s.waitForPort(ctx, c, timeout)
	case domain.HealthCheckWait:
		err = s.poll(ctx, st.Name(), timeout, s.pollInterval, healthy(c, runtime))
	case domain.LogWait:
		err = s.poll(ctx, st.Name(), timeout, s.pollInterval, logContains(c, runtime, st.Message))
	case domain.FixedDelayWait:
		err = sleep(ctx, st.Delay)
	case domain.CustomWait:
		if st.Check == nil {
			return domain.RuntimeError("custom wait strategy has no check")
		}
		err = st.Check(ctx, c)
	default:
		return domain.RuntimeError(fmt.Sprintf("unsupported wait strategy %T", strategy))
	}
	if err != nil {
		log.Debug().Err(err).Msg("container not ready")
		return err
	}

	log.Info().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("container ready")
	return nil
}

func (s *Service) waitForPort(ctx context.Context, c domain.RunningContainer, timeout time.Duration) error {
	if len(c.Ports) == 0 {
		return domain.PortNotFound(0)
	}

	host := c.Host
	if host == "" {
		host = domain.DefaultHost
	}
	port := c.Ports[0].HostPort

	return s.poll(ctx, domain.WaitForPort().Name(), timeout, s.portInterval, func(ctx context.Context) (bool, error) {
		return s.prober.Probe(ctx, host, port), nil
	})
}

func healthy(c domain.RunningContainer, runtime out.ContainerRuntime) condition {
	return func(ctx context.Context) (bool, error) {
		inspection, err := runtime.InspectContainer(ctx, c)
		if err != nil {
			return false, err
		}

		switch inspection.HealthStatus {
		case domain.HealthStatusHealthy:
			return true, nil
		case domain.HealthStatusUnhealthy:
			return false, domain.HealthCheckFailed("container reported unhealthy")
		default:
			return false, nil
		}
	}
}

func logContains(c domain.RunningContainer, runtime out.ContainerRuntime, message string) condition {
	return func(ctx context.Context) (bool, error) {
		logs, err := runtime.ContainerLogs(ctx, c)
		if err != nil {
			if isFatal(err) {
				return false, err
			}
			log := zerowrap.FromCtx(ctx)
			log.Debug().Err(err).Msg("log read failed, retrying")
			return false, nil
		}
		return strings.Contains(logs, message), nil
	}
}

// isFatal tells errors that end a wait apart from transient read failures.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrContainerNotFound) || errors.Is(err, domain.ErrHealthCheckFailed)
}

// poll races check against a wall-clock deadline. The loser is cancelled
// and joined before poll returns.
func (s *Service) poll(ctx context.Context, strategy string, timeout, interval time.Duration, check condition) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var ready atomic.Bool
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case <-timer.C:
			return domain.WaitStrategyTimedOut(strategy, timeout)
		case <-gctx.Done():
			return nil
		}
	})

	g.Go(func() error {
		for {
			ok, err := check(gctx)
			if err != nil {
				return err
			}
			if ok {
				ready.Store(true)
				cancel()
				return nil
			}

			if err := sleep(gctx, interval); err != nil {
				return nil
			}
		}
	})

	err := g.Wait()
	switch {
	case ready.Load():
		return nil
	case parent.Err() != nil:
		return parent.Err()
	default:
		return err
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
