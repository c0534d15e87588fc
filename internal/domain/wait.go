package domain

import (
	"context"
	"time"
)

// WaitStrategy decides when a started container is usable.
// The set of strategies is closed; see the Wait* constructors.
type WaitStrategy interface {
	// Name identifies the strategy in timeout errors and logs.
	Name() string
	isWaitStrategy()
}

// CustomCheck is a caller-supplied readiness check. A nil error means ready.
type CustomCheck func(ctx context.Context, c RunningContainer) error

// PortWait waits until the first published port accepts TCP connections.
type PortWait struct{}

// HealthCheckWait waits until the engine reports the container healthy.
type HealthCheckWait struct{}

// LogWait waits until the container output contains Message.
type LogWait struct {
	Message string
}

// FixedDelayWait sleeps for Delay and then reports ready.
type FixedDelayWait struct {
	Delay time.Duration
}

// CustomWait runs Check once.
type CustomWait struct {
	Check CustomCheck
}

func (PortWait) Name() string        { return "port" }
func (HealthCheckWait) Name() string { return "healthCheck" }
func (LogWait) Name() string         { return "log" }
func (FixedDelayWait) Name() string  { return "fixedDelay" }
func (CustomWait) Name() string      { return "custom" }

func (PortWait) isWaitStrategy()        {}
func (HealthCheckWait) isWaitStrategy() {}
func (LogWait) isWaitStrategy()         {}
func (FixedDelayWait) isWaitStrategy()  {}
func (CustomWait) isWaitStrategy()      {}

// WaitForPort returns the port strategy.
func WaitForPort() WaitStrategy { return PortWait{} }

// WaitForHealthCheck returns the health check strategy.
func WaitForHealthCheck() WaitStrategy { return HealthCheckWait{} }

// WaitForLog returns a strategy matching message as a plain substring.
func WaitForLog(message string) WaitStrategy { return LogWait{Message: message} }

// WaitFixedDelay returns a strategy that sleeps for d.
func WaitFixedDelay(d time.Duration) WaitStrategy { return FixedDelayWait{Delay: d} }

// WaitCustom returns a strategy delegating to check.
func WaitCustom(check CustomCheck) WaitStrategy { return CustomWait{Check: check} }
