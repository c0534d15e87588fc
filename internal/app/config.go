// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/viper"

	"github.com/bnema/localcontainers/internal/adapters/out/docker"
	"github.com/bnema/localcontainers/internal/adapters/out/tcpprober"
	"github.com/bnema/localcontainers/internal/domain"
	"github.com/bnema/localcontainers/internal/usecase/readiness"
)

// Config holds the application configuration.
type Config struct {
	Docker struct {
		Socket         string        `mapstructure:"socket"`
		APIVersion     string        `mapstructure:"api_version"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
		PullTimeout    time.Duration `mapstructure:"pull_timeout"`
		StopTimeout    time.Duration `mapstructure:"stop_timeout"`
		HostAddress    string        `mapstructure:"host_address"`
		SkipPull       bool          `mapstructure:"skip_pull"`
	} `mapstructure:"docker"`

	Wait struct {
		Timeout      time.Duration `mapstructure:"timeout"`
		PortInterval time.Duration `mapstructure:"port_interval"`
		PollInterval time.Duration `mapstructure:"poll_interval"`
		ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	} `mapstructure:"wait"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// DefaultDataDir returns the directory holding log files.
// Uses ~/.localcontainers, or the system temp dir when there is no home.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".localcontainers")
	}
	return filepath.Join(os.TempDir(), "localcontainers")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: localcontainers.toml
// Search paths (in order): /etc/localcontainers, ~/.config/localcontainers, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("localcontainers")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/localcontainers")
		v.AddConfigPath("$HOME/.config/localcontainers")
		v.AddConfigPath(".")
	}
}

// initConfig loads configuration from file and environment.
func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !strings.HasPrefix(cfg.Docker.APIVersion, "v") {
		cfg.Docker.APIVersion = "v" + cfg.Docker.APIVersion
	}

	return v, cfg, nil
}

func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("docker.socket", socketFromDockerHost(os.Getenv("DOCKER_HOST")))
	v.SetDefault("docker.api_version", docker.DefaultAPIVersion)
	v.SetDefault("docker.request_timeout", docker.DefaultRequestTimeout)
	v.SetDefault("docker.pull_timeout", docker.DefaultPullTimeout)
	v.SetDefault("docker.stop_timeout", docker.DefaultStopTimeout)
	v.SetDefault("docker.host_address", domain.DefaultHost)
	v.SetDefault("docker.skip_pull", false)
	v.SetDefault("wait.timeout", domain.DefaultWaitTimeout)
	v.SetDefault("wait.port_interval", readiness.DefaultPortInterval)
	v.SetDefault("wait.poll_interval", readiness.DefaultPollInterval)
	v.SetDefault("wait.probe_timeout", tcpprober.DefaultTimeout)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LOCALCONTAINERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// socketFromDockerHost extracts the socket path from a unix:// DOCKER_HOST.
// Any other scheme falls back to the default socket.
func socketFromDockerHost(host string) string {
	if path, ok := strings.CutPrefix(host, "unix://"); ok && path != "" {
		return path
	}
	return docker.DefaultSocketPath
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = filepath.Join(DefaultDataDir(), "logs", "localcontainers.log")
		}

		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}
