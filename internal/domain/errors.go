package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent the closed set of failures callers can observe.
// Use errors.Is against these sentinels and errors.As for *ContainerError fields.
var (
	ErrImagePullFailed      = errors.New("image pull failed")
	ErrStartFailed          = errors.New("container start failed")
	ErrHealthCheckFailed    = errors.New("health check failed")
	ErrWaitStrategyTimedOut = errors.New("wait strategy timed out")
	ErrPortNotFound         = errors.New("port not found")
	ErrRuntime              = errors.New("container runtime error")
	ErrSetupFailed          = errors.New("container setup failed")
	ErrContainerNotFound    = errors.New("container not found")
)

// ContainerError carries the details of a domain failure.
// Kind is one of the sentinels above; only the fields relevant to it are set.
type ContainerError struct {
	Kind     error
	Image    string
	Reason   string
	Strategy string
	Timeout  time.Duration
	Port     uint16
	ID       string
	Step     string
	Message  string
	Err      error
}

func (e *ContainerError) Error() string {
	switch e.Kind {
	case ErrImagePullFailed:
		return fmt.Sprintf("failed to pull image %s: %s", e.Image, e.Reason)
	case ErrStartFailed:
		return fmt.Sprintf("failed to start container: %s", e.Reason)
	case ErrHealthCheckFailed:
		return fmt.Sprintf("health check failed: %s", e.Reason)
	case ErrWaitStrategyTimedOut:
		return fmt.Sprintf("wait strategy %q timed out after %s", e.Strategy, e.Timeout)
	case ErrPortNotFound:
		return fmt.Sprintf("no host port mapped for container port %d", e.Port)
	case ErrSetupFailed:
		return fmt.Sprintf("setup step %q failed: %s", e.Step, e.Reason)
	case ErrContainerNotFound:
		return fmt.Sprintf("container %s not found", e.ID)
	default:
		if e.Err != nil && e.Message == "" {
			return e.Err.Error()
		}
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
}

// Is matches the error's kind sentinel.
func (e *ContainerError) Is(target error) bool {
	return e.Kind == target
}

// Unwrap exposes the underlying cause, if any.
func (e *ContainerError) Unwrap() error {
	return e.Err
}

// ImagePullFailed reports that image could not be pulled.
func ImagePullFailed(image, reason string) error {
	return &ContainerError{Kind: ErrImagePullFailed, Image: image, Reason: reason}
}

// StartFailed reports that the container could not be started.
func StartFailed(reason string) error {
	return &ContainerError{Kind: ErrStartFailed, Reason: reason}
}

// HealthCheckFailed reports an unhealthy container.
func HealthCheckFailed(reason string) error {
	return &ContainerError{Kind: ErrHealthCheckFailed, Reason: reason}
}

// WaitStrategyTimedOut reports that strategy did not succeed within timeout.
func WaitStrategyTimedOut(strategy string, timeout time.Duration) error {
	return &ContainerError{Kind: ErrWaitStrategyTimedOut, Strategy: strategy, Timeout: timeout}
}

// PortNotFound reports a missing published port.
func PortNotFound(containerPort uint16) error {
	return &ContainerError{Kind: ErrPortNotFound, Port: containerPort}
}

// RuntimeError reports an engine failure with its message.
func RuntimeError(message string) error {
	return &ContainerError{Kind: ErrRuntime, Message: message}
}

// WrapRuntimeError reports an engine failure caused by err.
func WrapRuntimeError(message string, err error) error {
	return &ContainerError{Kind: ErrRuntime, Message: message, Err: err}
}

// SetupFailed reports a failed post-start setup step.
func SetupFailed(step, reason string) error {
	return &ContainerError{Kind: ErrSetupFailed, Step: step, Reason: reason}
}

// WrapSetupFailed reports a failed setup step and keeps err as the cause.
func WrapSetupFailed(step string, err error) error {
	return &ContainerError{Kind: ErrSetupFailed, Step: step, Reason: err.Error(), Err: err}
}

// ContainerNotFound reports that id does not exist on the engine.
func ContainerNotFound(id string) error {
	return &ContainerError{Kind: ErrContainerNotFound, ID: id}
}
