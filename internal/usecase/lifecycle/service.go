// Package lifecycle implements the container lifecycle use case: launching a
// spec from pull to ready, sharing containers across a process, and tearing
// them down.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/localcontainers/internal/boundaries/in"
	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

// Config holds configuration needed by the lifecycle service.
type Config struct {
	// SkipPull starts from the local image store without pulling first.
	SkipPull bool
}

var _ in.LifecycleService = (*Service)(nil)

// Service implements the LifecycleService interface.
type Service struct {
	runtime   out.ContainerRuntime
	readiness in.ReadinessService
	config    Config
}

// NewService creates a new lifecycle service.
func NewService(runtime out.ContainerRuntime, readiness in.ReadinessService, config Config) *Service {
	return &Service{
		runtime:   runtime,
		readiness: readiness,
		config:    config,
	}
}

// Launch pulls the image, starts the container, waits until it is ready and
// runs the spec's setups in order. If anything fails after the container
// started, the container is removed before the error is returned.
func (s *Service) Launch(ctx context.Context, spec domain.ContainerSpec) (domain.RunningContainer, error) {
	cfg := spec.Configuration

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Launch",
		"key":                 spec.Key,
		"image":               cfg.Image,
	})
	log := zerowrap.FromCtx(ctx)

	if !s.config.SkipPull {
		if err := s.runtime.PullImage(ctx, cfg.Image); err != nil {
			return domain.RunningContainer{}, err
		}
	}

	c, err := s.runtime.StartContainer(ctx, cfg)
	if err != nil {
		return domain.RunningContainer{}, err
	}

	if err := s.readiness.WaitUntilReady(ctx, c, cfg, s.runtime); err != nil {
		s.discard(ctx, c)
		return domain.RunningContainer{}, err
	}

	for i, setup := range spec.Setups {
		if err := setup.SetUp(ctx, c); err != nil {
			step := stepName(setup, i)
			log.Warn().Err(err).Str("step", step).Msg("setup failed")

			s.tearDownSetups(ctx, spec.Setups[:i], c)
			s.discard(ctx, c)
			return domain.RunningContainer{}, domain.WrapSetupFailed(step, err)
		}
	}

	log.Info().
		Str(zerowrap.FieldEntityID, c.ID).
		Str("name", c.Name).
		Msg("container launched")

	return c, nil
}

// Teardown runs the setups' teardowns in reverse order, then stops and
// removes c. Every step runs even if an earlier one failed.
func (s *Service) Teardown(ctx context.Context, spec domain.ContainerSpec, c domain.RunningContainer) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "Teardown",
		zerowrap.FieldEntityID: c.ID,
		"key":                  spec.Key,
	})
	log := zerowrap.FromCtx(ctx)

	errs := []error{s.tearDownSetups(ctx, spec.Setups, c)}

	if err := s.runtime.StopContainer(ctx, c); err != nil && !errors.Is(err, domain.ErrContainerNotFound) {
		errs = append(errs, err)
	}
	if err := s.runtime.RemoveContainer(ctx, c); err != nil && !errors.Is(err, domain.ErrContainerNotFound) {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		log.Warn().Err(err).Msg("teardown incomplete")
		return err
	}

	log.Info().Msg("container torn down")
	return nil
}

func (s *Service) tearDownSetups(ctx context.Context, setups []domain.Setup, c domain.RunningContainer) error {
	var errs []error
	for i := len(setups) - 1; i >= 0; i-- {
		if err := setups[i].TearDown(ctx, c); err != nil {
			log := zerowrap.FromCtx(ctx)
			log.Warn().Err(err).Str("step", stepName(setups[i], i)).Msg("setup teardown failed")
			errs = append(errs, fmt.Errorf("teardown %s: %w", stepName(setups[i], i), err))
		}
	}
	return errors.Join(errs...)
}

// discard stops and removes a container that never became usable. The
// caller's context may already be done, so cleanup runs detached from it.
func (s *Service) discard(ctx context.Context, c domain.RunningContainer) {
	ctx = context.WithoutCancel(ctx)
	log := zerowrap.FromCtx(ctx)

	if err := s.runtime.StopContainer(ctx, c); err != nil {
		log.Warn().Err(err).Str(zerowrap.FieldEntityID, c.ID).Msg("failed to stop container")
	}
	if err := s.runtime.RemoveContainer(ctx, c); err != nil {
		log.Warn().Err(err).Str(zerowrap.FieldEntityID, c.ID).Msg("failed to remove container")
	}
}

func stepName(setup domain.Setup, index int) string {
	if named, ok := setup.(domain.Named); ok && named.Name() != "" {
		return named.Name()
	}
	return fmt.Sprintf("setup[%d]", index)
}
