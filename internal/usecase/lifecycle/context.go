package lifecycle

import (
	"context"
	"maps"
	"slices"

	"github.com/bnema/localcontainers/internal/domain"
)

// TestContext gives a test access to the containers resolved for it, by spec key.
type TestContext struct {
	containers map[string]domain.RunningContainer
}

// NewTestContext creates a context over a copy of containers.
func NewTestContext(containers map[string]domain.RunningContainer) *TestContext {
	return &TestContext{containers: maps.Clone(containers)}
}

// Container returns the container started for key.
func (tc *TestContext) Container(key string) (domain.RunningContainer, error) {
	if tc != nil {
		if c, ok := tc.containers[key]; ok {
			return c, nil
		}
	}
	return domain.RunningContainer{}, domain.ContainerNotFound(key)
}

// Keys lists the available keys in sorted order.
func (tc *TestContext) Keys() []string {
	if tc == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(tc.containers))
}

type testContextKey struct{}

// WithTestContext returns a copy of ctx carrying tc.
func WithTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, testContextKey{}, tc)
}

// TestContextFrom returns the TestContext carried by ctx, if any.
func TestContextFrom(ctx context.Context) (*TestContext, bool) {
	tc, ok := ctx.Value(testContextKey{}).(*TestContext)
	return tc, ok && tc != nil
}
