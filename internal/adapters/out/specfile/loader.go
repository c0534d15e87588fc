// Package specfile loads container specs from a YAML document.
//
//	containers:
//	  - key: db
//	    image: postgres:16-alpine
//	    ports: ["5432"]
//	    env: {POSTGRES_PASSWORD: test}
//	    env_file: [.env.test]
//	    volumes: ["./init:/docker-entrypoint-initdb.d:ro"]
//	    wait: {strategy: log, message: "ready to accept connections"}
//	    timeout: 30s
package specfile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"gopkg.in/yaml.v3"

	"github.com/bnema/localcontainers/internal/adapters/out/envloader"
	"github.com/bnema/localcontainers/internal/boundaries/out"
	"github.com/bnema/localcontainers/internal/domain"
)

// ErrInvalidSpec is returned for documents that parse but do not describe
// a usable container.
var ErrInvalidSpec = errors.New("invalid container spec")

type document struct {
	Containers []entry `yaml:"containers"`
}

type entry struct {
	Key         string            `yaml:"key"`
	Image       string            `yaml:"image"`
	Name        string            `yaml:"name"`
	Ports       []string          `yaml:"ports"`
	Env         map[string]string `yaml:"env"`
	EnvFile     []string          `yaml:"env_file"`
	Volumes     []string          `yaml:"volumes"`
	Command     []string          `yaml:"command"`
	Wait        *waitEntry        `yaml:"wait"`
	Timeout     string            `yaml:"timeout"`
	HealthCheck *healthEntry      `yaml:"healthcheck"`
}

type waitEntry struct {
	Strategy string `yaml:"strategy"`
	Message  string `yaml:"message"`
	Delay    string `yaml:"delay"`
}

type healthEntry struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval"`
	Timeout     string   `yaml:"timeout"`
	Retries     int      `yaml:"retries"`
	StartPeriod string   `yaml:"start_period"`
}

var _ out.SpecLoader = (*Loader)(nil)

// Loader implements the SpecLoader interface for YAML files.
type Loader struct{}

// NewLoader creates a new spec file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads path. Relative env files and bind mounts resolve against the
// directory holding the file.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.ContainerSpec, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "specfile",
		zerowrap.FieldAction:  "Load",
		zerowrap.FieldPath:    path,
	})

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve spec directory: %w", err)
	}

	specs, err := Parse(ctx, data, baseDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := zerowrap.FromCtx(ctx)
	log.Debug().Int(zerowrap.FieldCount, len(specs)).Msg("spec file loaded")
	return specs, nil
}

// Parse decodes a spec document. baseDir anchors relative paths.
func Parse(ctx context.Context, data []byte, baseDir string) ([]domain.ContainerSpec, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spec document: %w", err)
	}
	if len(doc.Containers) == 0 {
		return nil, fmt.Errorf("%w: no containers declared", ErrInvalidSpec)
	}

	env := envloader.NewFileLoader(baseDir)
	seen := make(map[string]bool, len(doc.Containers))
	specs := make([]domain.ContainerSpec, 0, len(doc.Containers))

	for i, e := range doc.Containers {
		spec, err := e.toSpec(ctx, env, baseDir)
		if err != nil {
			return nil, fmt.Errorf("containers[%d]: %w", i, err)
		}
		if seen[spec.Key] {
			return nil, fmt.Errorf("containers[%d]: %w: duplicate key %q", i, ErrInvalidSpec, spec.Key)
		}
		seen[spec.Key] = true
		specs = append(specs, spec)
	}

	return specs, nil
}

func (e entry) toSpec(ctx context.Context, envLoader out.EnvLoader, baseDir string) (domain.ContainerSpec, error) {
	if e.Image == "" {
		return domain.ContainerSpec{}, fmt.Errorf("%w: image is required", ErrInvalidSpec)
	}

	key := e.Key
	if key == "" {
		key = e.Name
	}
	if key == "" {
		key = defaultKey(e.Image)
	}

	ports, err := ParsePorts(e.Ports...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}

	volumes, err := ParseVolumes(baseDir, e.Volumes...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}

	env, err := envLoader.Load(ctx, e.EnvFile...)
	if err != nil {
		return domain.ContainerSpec{}, err
	}
	for key := range e.Env {
		if err := domain.ValidateEnvKey(key); err != nil {
			return domain.ContainerSpec{}, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
		}
	}
	maps.Copy(env, e.Env)

	opts := []domain.ConfigOption{
		domain.WithName(e.Name),
		domain.WithPorts(ports...),
		domain.WithEnv(env),
		domain.WithVolumes(volumes...),
		domain.WithCommand(e.Command...),
	}

	if e.Wait != nil {
		strategy, err := e.Wait.toStrategy()
		if err != nil {
			return domain.ContainerSpec{}, err
		}
		opts = append(opts, domain.WithWaitStrategy(strategy))
	}

	if e.Timeout != "" {
		timeout, err := parseDuration("timeout", e.Timeout)
		if err != nil {
			return domain.ContainerSpec{}, err
		}
		opts = append(opts, domain.WithWaitTimeout(timeout))
	}

	if e.HealthCheck != nil {
		hc, err := e.HealthCheck.toConfig()
		if err != nil {
			return domain.ContainerSpec{}, err
		}
		opts = append(opts, domain.WithHealthCheck(hc))
	}

	return domain.ContainerSpec{
		Key:           key,
		Configuration: domain.NewConfiguration(e.Image, opts...),
	}, nil
}

func (w waitEntry) toStrategy() (domain.WaitStrategy, error) {
	var delay time.Duration
	if strings.EqualFold(w.Strategy, "delay") {
		d, err := parseDuration("wait.delay", w.Delay)
		if err != nil {
			return nil, err
		}
		delay = d
	}
	return ParseWaitStrategy(w.Strategy, w.Message, delay)
}

func (h healthEntry) toConfig() (domain.HealthCheckConfig, error) {
	if len(h.Test) == 0 {
		return domain.HealthCheckConfig{}, fmt.Errorf("%w: healthcheck.test is required", ErrInvalidSpec)
	}

	hc := domain.NewHealthCheck(h.Test...)
	if h.Retries > 0 {
		hc.Retries = h.Retries
	}

	for _, field := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"healthcheck.interval", h.Interval, &hc.Interval},
		{"healthcheck.timeout", h.Timeout, &hc.Timeout},
		{"healthcheck.start_period", h.StartPeriod, &hc.StartPeriod},
	} {
		if field.value == "" {
			continue
		}
		d, err := parseDuration(field.name, field.value)
		if err != nil {
			return domain.HealthCheckConfig{}, err
		}
		*field.dst = d
	}

	return hc, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s %q is not a valid duration", ErrInvalidSpec, field, value)
	}
	return d, nil
}

// defaultKey derives a key from the image's last path element, without tag.
func defaultKey(image string) string {
	name := image
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexAny(name, ":@"); i >= 0 {
		name = name[:i]
	}
	return name
}
