package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerError_KindsAndMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"pull", ImagePullFailed("nginx", "denied"), ErrImagePullFailed, "failed to pull image nginx: denied"},
		{"start", StartFailed("no id"), ErrStartFailed, "failed to start container: no id"},
		{"health", HealthCheckFailed("unhealthy"), ErrHealthCheckFailed, "health check failed: unhealthy"},
		{"timeout", WaitStrategyTimedOut("port", 2*time.Second), ErrWaitStrategyTimedOut, `wait strategy "port" timed out after 2s`},
		{"port", PortNotFound(0), ErrPortNotFound, "no host port mapped for container port 0"},
		{"runtime", RuntimeError("HTTP 500"), ErrRuntime, "HTTP 500"},
		{"setup", SetupFailed("seed", "boom"), ErrSetupFailed, `setup step "seed" failed: boom`},
		{"not found", ContainerNotFound("abc"), ErrContainerNotFound, "container abc not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.msg, tt.err.Error())

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.kind))
		})
	}
}

func TestContainerError_DistinctKinds(t *testing.T) {
	err := ContainerNotFound("abc")

	assert.False(t, errors.Is(err, ErrRuntime))
	assert.False(t, errors.Is(err, ErrPortNotFound))
}

func TestWrapRuntimeError_UnwrapsCause(t *testing.T) {
	err := WrapRuntimeError("request failed", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, ErrRuntime))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "request failed: unexpected EOF", err.Error())

	var cerr *ContainerError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "request failed", cerr.Message)
}

func TestWrapSetupFailed_KeepsCause(t *testing.T) {
	cause := errors.New("table already exists")
	err := WrapSetupFailed("migrate", cause)

	assert.True(t, errors.Is(err, ErrSetupFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, `setup step "migrate" failed: table already exists`, err.Error())
}
