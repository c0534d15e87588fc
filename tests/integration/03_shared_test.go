//go:build integration

package integration

import (
	"golang.org/x/sync/errgroup"

	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/internal/usecase/lifecycle"
	"github.com/bnema/localcontainers/tests/integration/helpers"
)

// Test07_SharedContainerStartsOnce launches one container for many callers
// and removes it on shutdown.
func (s *LocalContainersSuite) Test07_SharedContainerStartsOnce() {
	shared := lifecycle.NewSharedManager(s.kernel.Lifecycle())
	spec := domain.ContainerSpec{
		Key:           "web",
		Configuration: domain.NewConfiguration(helpers.NginxImage, domain.WithPort(80)),
	}

	ids := make([]string, 4)
	g, ctx := errgroup.WithContext(s.ctx)
	for i := range ids {
		g.Go(func() error {
			c, err := shared.Get(ctx, spec)
			ids[i] = c.ID
			return err
		})
	}
	s.Require().NoError(g.Wait())

	for _, id := range ids {
		s.Equal(ids[0], id)
	}

	tc, err := shared.Context(s.ctx, spec)
	s.Require().NoError(err)
	c, err := tc.Container("web")
	s.Require().NoError(err)
	s.Equal(ids[0], c.ID)

	s.Require().NoError(shared.ShutdownAll(s.ctx))
	s.requireGone(ids[0])
}
