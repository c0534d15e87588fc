//go:build integration

package integration

import (
	"io"
	"net/http"

	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/tests/integration/helpers"
)

// Test01_NginxEndToEnd starts nginx, waits for its port, talks HTTP to it,
// reads its logs, and removes it.
func (s *LocalContainersSuite) Test01_NginxEndToEnd() {
	runtime := s.kernel.Runtime()
	cfg := domain.NewConfiguration(helpers.NginxImage,
		domain.WithPort(80),
		domain.WithEnv(map[string]string{"NGINX_ENTRYPOINT_QUIET_LOGS": "0"}),
	)

	c, err := runtime.StartContainer(s.ctx, cfg)
	s.Require().NoError(err)
	s.cleanup(c)

	s.NotEmpty(c.ID)
	s.NotEmpty(c.Name)
	s.Require().Len(c.Ports, 1)
	s.EqualValues(80, c.Ports[0].ContainerPort)
	s.NotZero(c.Ports[0].HostPort)

	s.Require().NoError(s.kernel.Readiness().WaitUntilReady(s.ctx, c, cfg, runtime))

	address, err := c.Address(80)
	s.Require().NoError(err)
	resp, err := http.Get("http://" + address + "/")
	s.Require().NoError(err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "nginx")

	inspection, err := runtime.InspectContainer(s.ctx, c)
	s.Require().NoError(err)
	s.True(inspection.IsRunning)
	s.Equal(domain.HealthStatusNotConfigured, inspection.HealthStatus)

	logs, err := runtime.ContainerLogs(s.ctx, c)
	s.Require().NoError(err)
	s.Contains(logs, "GET / HTTP/1.1")

	s.Require().NoError(runtime.StopContainer(s.ctx, c))
	s.Require().NoError(runtime.StopContainer(s.ctx, c), "stopping twice succeeds")

	inspection, err = runtime.InspectContainer(s.ctx, c)
	s.Require().NoError(err)
	s.False(inspection.IsRunning)

	s.Require().NoError(runtime.RemoveContainer(s.ctx, c))
	s.requireGone(c.ID)

	_, err = runtime.InspectContainer(s.ctx, c)
	s.ErrorIs(err, domain.ErrContainerNotFound)
}

// Test02_PullUnknownImage reports the daemon's message.
func (s *LocalContainersSuite) Test02_PullUnknownImage() {
	err := s.kernel.Runtime().PullImage(s.ctx, "localcontainers/does-not-exist:never")

	s.Require().ErrorIs(err, domain.ErrImagePullFailed)
}
