//go:build integration

package integration

import (
	"time"

	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/tests/integration/helpers"
)

func (s *LocalContainersSuite) launch(cfg domain.ContainerConfiguration) domain.RunningContainer {
	c, err := s.kernel.Runtime().StartContainer(s.ctx, cfg)
	s.Require().NoError(err)
	s.cleanup(c)
	return c
}

// Test03_LogStrategy waits for a line printed after a delay.
func (s *LocalContainersSuite) Test03_LogStrategy() {
	cfg := domain.NewConfiguration(helpers.AlpineImage,
		domain.WithCommand("sh", "-c", "sleep 1; echo booted; echo ready to serve; sleep 300"),
		domain.WithWaitStrategy(domain.WaitForLog("ready to serve")),
		domain.WithWaitTimeout(20*time.Second),
	)
	c := s.launch(cfg)

	s.Require().NoError(s.kernel.Readiness().WaitUntilReady(s.ctx, c, cfg, s.kernel.Runtime()))
}

// Test04_LogStrategyTimeout gives up within the timeout plus one interval.
func (s *LocalContainersSuite) Test04_LogStrategyTimeout() {
	timeout := 2 * time.Second
	cfg := domain.NewConfiguration(helpers.AlpineImage,
		domain.WithCommand("sleep", "300"),
		domain.WithWaitStrategy(domain.WaitForLog("never printed")),
		domain.WithWaitTimeout(timeout),
	)
	c := s.launch(cfg)

	start := time.Now()
	err := s.kernel.Readiness().WaitUntilReady(s.ctx, c, cfg, s.kernel.Runtime())

	s.Require().ErrorIs(err, domain.ErrWaitStrategyTimedOut)
	s.Less(time.Since(start), timeout+s.kernel.Config().Wait.PollInterval+time.Second)
}

// Test05_HealthCheckStrategy waits for an engine health check to pass.
func (s *LocalContainersSuite) Test05_HealthCheckStrategy() {
	hc := domain.NewHealthCheck("CMD-SHELL", "test -f /tmp/ready")
	hc.Interval = time.Second
	hc.Timeout = time.Second
	cfg := domain.NewConfiguration(helpers.AlpineImage,
		domain.WithCommand("sh", "-c", "sleep 2; touch /tmp/ready; sleep 300"),
		domain.WithHealthCheck(hc),
		domain.WithWaitStrategy(domain.WaitForHealthCheck()),
		domain.WithWaitTimeout(30*time.Second),
	)
	c := s.launch(cfg)

	s.Require().NoError(s.kernel.Readiness().WaitUntilReady(s.ctx, c, cfg, s.kernel.Runtime()))

	inspection, err := s.kernel.Runtime().InspectContainer(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(domain.HealthStatusHealthy, inspection.HealthStatus)
}

// Test06_PortStrategyWithoutPorts fails immediately.
func (s *LocalContainersSuite) Test06_PortStrategyWithoutPorts() {
	cfg := domain.NewConfiguration(helpers.AlpineImage, domain.WithCommand("sleep", "300"))
	c := s.launch(cfg)

	err := s.kernel.Readiness().WaitUntilReady(s.ctx, c, cfg, s.kernel.Runtime())

	s.Require().ErrorIs(err, domain.ErrPortNotFound)
}
