package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/localcontainers/internal/adapters/out/docker"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localcontainers.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("DOCKER_HOST", "")

	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, docker.DefaultSocketPath, cfg.Docker.Socket)
	assert.Equal(t, "v1.47", cfg.Docker.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.Docker.RequestTimeout)
	assert.Equal(t, 300*time.Second, cfg.Docker.PullTimeout)
	assert.Equal(t, 10*time.Second, cfg.Docker.StopTimeout)
	assert.Equal(t, "127.0.0.1", cfg.Docker.HostAddress)
	assert.False(t, cfg.Docker.SkipPull)
	assert.Equal(t, 60*time.Second, cfg.Wait.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Wait.PortInterval)
	assert.Equal(t, time.Second, cfg.Wait.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Wait.ProbeTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Logging.File.Enabled)
}

func TestInitConfig_File(t *testing.T) {
	path := writeConfig(t, `[docker]
socket = "/run/user/1000/docker.sock"
api_version = "1.45"
pull_timeout = "10m"
host_address = "192.168.1.10"

[wait]
timeout = "2m"
poll_interval = "250ms"

[logging]
level = "debug"
format = "json"
`)

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/docker.sock", cfg.Docker.Socket)
	assert.Equal(t, "v1.45", cfg.Docker.APIVersion)
	assert.Equal(t, 10*time.Minute, cfg.Docker.PullTimeout)
	assert.Equal(t, "192.168.1.10", cfg.Docker.HostAddress)
	assert.Equal(t, 2*time.Minute, cfg.Wait.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Wait.PollInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestInitConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `[docker]
stop_timeout = "5s"
`)
	t.Setenv("LOCALCONTAINERS_DOCKER_STOP_TIMEOUT", "20s")
	t.Setenv("LOCALCONTAINERS_DOCKER_SKIP_PULL", "true")

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.Docker.StopTimeout)
	assert.True(t, cfg.Docker.SkipPull)
}

func TestInitConfig_DockerHost(t *testing.T) {
	t.Setenv("DOCKER_HOST", "unix:///run/user/1000/podman/podman.sock")

	_, cfg, err := initConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000/podman/podman.sock", cfg.Docker.Socket)
}

func TestInitConfig_InvalidFile(t *testing.T) {
	_, _, err := initConfig(writeConfig(t, "[docker\nsocket ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestSocketFromDockerHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "", want: docker.DefaultSocketPath},
		{host: "unix:///tmp/docker.sock", want: "/tmp/docker.sock"},
		{host: "unix://", want: docker.DefaultSocketPath},
		{host: "tcp://127.0.0.1:2375", want: docker.DefaultSocketPath},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, socketFromDockerHost(tt.host))
		})
	}
}

func TestInitLogger_File(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.Path = filepath.Join(t.TempDir(), "logs", "lc.log")
	cfg.Logging.File.MaxSize = 1

	log, cleanup, err := initLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()

	log.Info().Msg("hello")
}
