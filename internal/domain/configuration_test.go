package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfiguration_Defaults(t *testing.T) {
	cfg := NewConfiguration("nginx:alpine")

	assert.Equal(t, "nginx:alpine", cfg.Image)
	assert.Equal(t, PortWait{}, cfg.WaitStrategy)
	assert.Equal(t, DefaultWaitTimeout, cfg.WaitTimeout)
	assert.Empty(t, cfg.Ports)
	assert.Nil(t, cfg.HealthCheck)
}

func TestNewConfiguration_PortsAreAnOrderedSet(t *testing.T) {
	cfg := NewConfiguration("nginx",
		WithPort(80),
		WithPorts(
			PortMapping{ContainerPort: 53, Protocol: ProtocolUDP},
			PortMapping{ContainerPort: 80},
		),
	)

	assert.Equal(t, []PortMapping{
		{ContainerPort: 80, Protocol: ProtocolTCP},
		{ContainerPort: 53, Protocol: ProtocolUDP},
	}, cfg.Ports)
}

func TestNewConfiguration_CopiesInputs(t *testing.T) {
	env := map[string]string{"A": "1"}
	cmd := []string{"sleep", "10"}
	hc := NewHealthCheck("CMD", "true")

	cfg := NewConfiguration("alpine", WithEnv(env), WithCommand(cmd...), WithHealthCheck(hc))

	env["A"] = "changed"
	cmd[0] = "changed"
	hc.Test[0] = "changed"

	assert.Equal(t, "1", cfg.Environment["A"])
	assert.Equal(t, []string{"sleep", "10"}, cfg.Command)
	assert.Equal(t, []string{"CMD", "true"}, cfg.HealthCheck.Test)
}

func TestContainerConfiguration_Effective(t *testing.T) {
	var cfg ContainerConfiguration

	assert.Equal(t, DefaultWaitTimeout, cfg.EffectiveWaitTimeout())
	assert.Equal(t, WaitForPort(), cfg.EffectiveWaitStrategy())

	cfg = NewConfiguration("alpine", WithWaitTimeout(5*time.Second), WithWaitStrategy(WaitForLog("ready")))
	assert.Equal(t, 5*time.Second, cfg.EffectiveWaitTimeout())
	assert.Equal(t, LogWait{Message: "ready"}, cfg.EffectiveWaitStrategy())
}

func TestNewHealthCheck_Defaults(t *testing.T) {
	hc := NewHealthCheck("CMD-SHELL", "pg_isready")

	assert.Equal(t, 10*time.Second, hc.Interval)
	assert.Equal(t, 5*time.Second, hc.Timeout)
	assert.Equal(t, 3, hc.Retries)
	assert.Zero(t, hc.StartPeriod)
}

func TestWaitStrategy_Names(t *testing.T) {
	tests := []struct {
		strategy WaitStrategy
		want     string
	}{
		{WaitForPort(), "port"},
		{WaitForHealthCheck(), "healthCheck"},
		{WaitForLog("x"), "log"},
		{WaitFixedDelay(time.Second), "fixedDelay"},
		{WaitCustom(nil), "custom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.strategy.Name())
	}
}
