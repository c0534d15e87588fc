package domain

import "context"

// ContainerSpec bundles a configuration with post-start setup steps.
// Key identifies the spec in shared caches and test contexts.
type ContainerSpec struct {
	Key           string
	Configuration ContainerConfiguration
	Setups        []Setup
}

// Setup is a step run after the container is ready, such as seeding data.
type Setup interface {
	SetUp(ctx context.Context, c RunningContainer) error
	TearDown(ctx context.Context, c RunningContainer) error
}

// Named is implemented by setups that want a readable step name in errors.
type Named interface {
	Name() string
}

// SetupFunc adapts a function into a Setup with a no-op teardown.
type SetupFunc func(ctx context.Context, c RunningContainer) error

// SetUp calls f.
func (f SetupFunc) SetUp(ctx context.Context, c RunningContainer) error {
	return f(ctx, c)
}

// TearDown does nothing.
func (f SetupFunc) TearDown(context.Context, RunningContainer) error {
	return nil
}
