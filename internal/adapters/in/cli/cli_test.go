package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/localcontainers/internal/adapters/out/envloader"
	"github.com/bnema/localcontainers/internal/domain"
)

// startEngine serves handler on a Unix socket and returns a config file
// pointing the CLI at it.
func startEngine(t *testing.T, handler http.Handler) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "lc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	socket := filepath.Join(dir, "docker.sock")
	listener, err := net.Listen("unix", socket)
	require.NoError(t, err)

	server := httptest.NewUnstartedServer(handler)
	_ = server.Listener.Close()
	server.Listener = listener
	server.Start()
	t.Cleanup(server.Close)

	configPath := filepath.Join(dir, "localcontainers.toml")
	config := "[docker]\nsocket = \"" + socket + "\"\n\n[logging]\nlevel = \"error\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	return configPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const inspectBody = `{
	"Id":"abc123def4567890",
	"Name":"/web",
	"Config":{"Image":"nginx:alpine"},
	"State":{"Running":true,"Health":{"Status":"healthy"}},
	"NetworkSettings":{"Ports":{"80/tcp":[{"HostIp":"0.0.0.0","HostPort":"32768"}]}}
}`

// engineMux answers the calls made by a pull, create, start and inspect cycle.
func engineMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1.47/images/create", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Pulling from library/nginx"}` + "\n" + `{"status":"Status: Image is up to date"}` + "\n"))
	})
	mux.HandleFunc("POST /v1.47/containers/create", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"abc123def4567890"}`))
	})
	mux.HandleFunc("POST /v1.47/containers/{id}/start", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /v1.47/containers/{id}/json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(inspectBody))
	})
	return mux
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "localcontainers 1.2.3")
	assert.Contains(t, out, "Commit: abc")
}

func TestInspectCmd(t *testing.T) {
	configPath := startEngine(t, engineMux())

	out, err := execute(t, "--config", configPath, "inspect", "web")

	require.NoError(t, err)
	assert.Contains(t, out, "abc123def4567890")
	assert.Contains(t, out, "nginx:alpine")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "healthy")
	assert.Contains(t, out, "127.0.0.1:32768")
}

func TestLogsCmd(t *testing.T) {
	configPath := startEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.47/containers/web/logs", r.URL.Path)
		payload := "hello\n"
		_, _ = w.Write(append([]byte{1, 0, 0, 0, 0, 0, 0, byte(len(payload))}, payload...))
	}))

	out, err := execute(t, "--config", configPath, "logs", "web")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestStopCmd_ReportsEachContainer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1.47/containers/a/stop", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /v1.47/containers/b/stop", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	configPath := startEngine(t, mux)

	out, err := execute(t, "--config", configPath, "stop", "a", "b")

	require.ErrorIs(t, err, domain.ErrContainerNotFound)
	assert.Contains(t, out, "Stopped a")
	assert.Contains(t, out, "container b not found")
}

func TestRmCmd_StopsFirst(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	configPath := startEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))

	out, err := execute(t, "--config", configPath, "rm", "--stop", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed abc")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"POST /v1.47/containers/abc/stop", "DELETE /v1.47/containers/abc"}, calls)
}

func TestPullCmd_Failure(t *testing.T) {
	configPath := startEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Pulling"}` + "\n" + `{"errorDetail":{"message":"manifest unknown"},"error":"manifest unknown"}` + "\n"))
	}))

	_, err := execute(t, "--config", configPath, "pull", "nginx:nope")

	require.ErrorIs(t, err, domain.ErrImagePullFailed)
	assert.Contains(t, err.Error(), "manifest unknown")
}

func TestDoctorCmd(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOut string
		wantErr bool
	}{
		{
			name:    "compatible",
			body:    `{"Version":"27.3.1","ApiVersion":"1.47","MinAPIVersion":"1.24","Os":"linux","Arch":"amd64"}`,
			wantOut: "Engine is compatible",
		},
		{
			name:    "too old",
			body:    `{"Version":"24.0.7","ApiVersion":"1.43","MinAPIVersion":"1.12","Os":"linux","Arch":"amd64"}`,
			wantOut: "Incompatible engine",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := startEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/version", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))

			out, err := execute(t, "--config", configPath, "doctor")

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrRuntime)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, tt.wantOut)
			assert.Contains(t, out, "v1.47")
		})
	}
}

func TestWaitCmd_Delay(t *testing.T) {
	configPath := startEngine(t, engineMux())

	out, err := execute(t, "--config", configPath, "wait", "web", "--wait", "delay", "--delay", "10ms")

	require.NoError(t, err)
	assert.Contains(t, out, "Waiting for web (fixedDelay, 1m0s)")
	assert.Contains(t, out, "web is ready")
}

func TestWaitCmd_InvalidStrategy(t *testing.T) {
	configPath := startEngine(t, engineMux())

	_, err := execute(t, "--config", configPath, "wait", "web", "--wait", "log")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log wait needs a message")
}

func TestRunCmd(t *testing.T) {
	configPath := startEngine(t, engineMux())

	out, err := execute(t, "--config", configPath, "run", "-p", "80", "--wait", "delay", "--delay", "1ms", "nginx:alpine")

	require.NoError(t, err)
	assert.Contains(t, out, "Starting nginx:alpine")
	assert.Contains(t, out, "web is ready")
	assert.Contains(t, out, "abc123def4567890")
	assert.Contains(t, out, "127.0.0.1:32768")
}

func TestUpCmd_Detach(t *testing.T) {
	configPath := startEngine(t, engineMux())
	specPath := filepath.Join(t.TempDir(), "containers.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(`containers:
  - key: web
    image: nginx:alpine
    ports: ["80"]
    wait: {strategy: delay, delay: 1ms}
`), 0o600))

	out, err := execute(t, "--config", configPath, "up", "--detach", specPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Starting 1 container(s)")
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "abc123def456")
	assert.Contains(t, out, "80->32768")
	assert.Contains(t, out, "left running")
}

func TestRunOptions_Spec(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.env"), []byte("A=from-file\nB=kept\n"), 0o600))

	opts := &runOptions{
		ports:    []string{"5432", "8080:80"},
		env:      []string{"A=from-flag"},
		envFiles: []string{"test.env"},
		volumes:  []string{"/data:/var/lib/data:ro"},
		name:     "db",
		wait:     waitOptions{strategy: "log", message: "ready", timeout: 5 * time.Second},
	}

	spec, err := opts.spec(context.Background(), envloader.NewFileLoader(dir), time.Minute, "postgres:16", []string{"postgres", "-c", "fsync=off"})

	require.NoError(t, err)
	assert.Equal(t, "db", spec.Key)
	cfg := spec.Configuration
	assert.Equal(t, "postgres:16", cfg.Image)
	assert.Equal(t, "db", cfg.Name)
	assert.Equal(t, map[string]string{"A": "from-flag", "B": "kept"}, cfg.Environment)
	assert.Equal(t, []domain.PortMapping{
		{ContainerPort: 5432, Protocol: domain.ProtocolTCP},
		{ContainerPort: 80, HostPort: 8080, Protocol: domain.ProtocolTCP},
	}, cfg.Ports)
	assert.Equal(t, []domain.VolumeMount{{HostPath: "/data", ContainerPath: "/var/lib/data", ReadOnly: true}}, cfg.Volumes)
	assert.Equal(t, []string{"postgres", "-c", "fsync=off"}, cfg.Command)
	assert.Equal(t, domain.WaitForLog("ready"), cfg.WaitStrategy)
	assert.Equal(t, 5*time.Second, cfg.WaitTimeout)
}

func TestRunOptions_SpecDefaults(t *testing.T) {
	opts := &runOptions{}

	spec, err := opts.spec(context.Background(), envloader.NewFileLoader(""), 90*time.Second, "redis:7", nil)

	require.NoError(t, err)
	assert.Equal(t, "redis:7", spec.Key)
	assert.Equal(t, domain.WaitForPort(), spec.Configuration.WaitStrategy)
	assert.Equal(t, 90*time.Second, spec.Configuration.WaitTimeout)
}

func TestRunOptions_SpecRejectsBadEnv(t *testing.T) {
	opts := &runOptions{env: []string{"NOEQUALS"}}

	_, err := opts.spec(context.Background(), envloader.NewFileLoader(""), time.Minute, "redis:7", nil)

	require.ErrorIs(t, err, domain.ErrInvalidEnvKey)
}

func TestPortSummary(t *testing.T) {
	c := domain.RunningContainer{Ports: []domain.ResolvedPortMapping{
		{ContainerPort: 80, HostPort: 32768, Protocol: domain.ProtocolTCP},
		{ContainerPort: 53, HostPort: 32769, Protocol: domain.ProtocolUDP},
	}}

	assert.Equal(t, "80->32768, 53/udp->32769", portSummary(c))
}
