package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/docker/go-connections/sockets"

	"github.com/bnema/localcontainers/internal/domain"
)

const (
	// DefaultSocketPath is where the Docker daemon listens by default.
	DefaultSocketPath = "/var/run/docker.sock"

	// DefaultAPIVersion is the fixed Engine API version prefixed to every path.
	DefaultAPIVersion = "v1.47"

	// MaxResponseSize caps how much of a response body is read into memory.
	// This is a local limit, not part of the Engine API.
	MaxResponseSize = 10 << 20

	// DefaultRequestTimeout bounds ordinary (non-pull) requests.
	DefaultRequestTimeout = 30 * time.Second

	// Some daemons reject requests without a Host header, even over a socket.
	engineHost = "localhost"
	userAgent  = "localcontainers/1.0"
)

// Transport issues HTTP/1.1 requests to the engine over a Unix domain socket.
type Transport struct {
	httpClient *http.Client
	socketPath string
	apiVersion string
	timeout    time.Duration
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithAPIVersion overrides the API version path segment (e.g. "v1.45").
func WithAPIVersion(version string) TransportOption {
	return func(t *Transport) {
		if !strings.HasPrefix(version, "v") {
			version = "v" + version
		}
		t.apiVersion = version
	}
}

// WithRequestTimeout sets the default per-request timeout.
func WithRequestTimeout(timeout time.Duration) TransportOption {
	return func(t *Transport) {
		t.timeout = timeout
	}
}

// NewTransport creates a transport dialing socketPath for every connection.
func NewTransport(socketPath string, opts ...TransportOption) (*Transport, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	t := &Transport{
		socketPath: socketPath,
		apiVersion: DefaultAPIVersion,
		timeout:    DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}

	tr := &http.Transport{}
	if err := sockets.ConfigureTransport(tr, "unix", socketPath); err != nil {
		return nil, fmt.Errorf("failed to configure unix socket transport for %s: %w", socketPath, err)
	}
	t.httpClient = &http.Client{Transport: tr}

	return t, nil
}

// APIVersion returns the version segment used in request paths.
func (t *Transport) APIVersion() string {
	return t.apiVersion
}

// SocketPath returns the daemon socket this transport dials.
func (t *Transport) SocketPath() string {
	return t.socketPath
}

// Close releases idle connections.
func (t *Transport) Close() {
	t.httpClient.CloseIdleConnections()
}

// request describes one engine call. The container id is carried explicitly
// so that error mapping never has to parse it back out of the URL.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	containerID string
	accept      []int
	timeout     time.Duration
	unversioned bool
}

// response is a fully read engine response.
type response struct {
	status int
	body   []byte
}

func (r request) url(apiVersion string) string {
	u := url.URL{Scheme: "http", Host: engineHost, Path: r.path, RawQuery: r.query.Encode()}
	if !r.unversioned {
		u.Path = "/" + apiVersion + r.path
	}
	return u.String()
}

func (r request) accepts(status int) bool {
	return (status >= 200 && status < 300) || slices.Contains(r.accept, status)
}

// failure maps a rejected response onto the domain taxonomy.
func (r request) failure(status int, body []byte) error {
	if status == http.StatusNotFound && r.containerID != "" {
		return domain.ContainerNotFound(r.containerID)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return domain.RuntimeError(payload.Message)
	}

	return domain.RuntimeError(fmt.Sprintf("HTTP %d", status))
}

// stream sends req and returns the open response. The caller must close the
// body and call cancel once done with it.
func (t *Transport) stream(ctx context.Context, req request) (*http.Response, context.CancelFunc, error) {
	log := zerowrap.FromCtx(ctx)

	timeout := req.timeout
	if timeout == 0 {
		timeout = t.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			cancel()
			return nil, nil, domain.WrapRuntimeError("failed to encode request body", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url(t.apiVersion), body)
	if err != nil {
		cancel()
		return nil, nil, domain.WrapRuntimeError("failed to build request", err)
	}
	httpReq.Host = engineHost
	httpReq.Header.Set("User-Agent", userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log.Debug().
		Str(zerowrap.FieldMethod, req.method).
		Str(zerowrap.FieldPath, httpReq.URL.Path).
		Msg("engine request")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, nil, domain.WrapRuntimeError(fmt.Sprintf("%s %s failed", req.method, req.path), err)
	}

	return resp, cancel, nil
}

// do sends req, reads the bounded body, and maps rejected statuses to errors.
func (t *Transport) do(ctx context.Context, req request) (*response, error) {
	resp, cancel, err := t.stream(ctx, req)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	body, err := readBounded(resp.Body)
	if err != nil {
		return nil, err
	}

	if !req.accepts(resp.StatusCode) {
		return nil, req.failure(resp.StatusCode, body)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

// readBounded reads at most MaxResponseSize bytes.
func readBounded(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxResponseSize+1))
	if err != nil {
		return nil, domain.WrapRuntimeError("failed to read response body", err)
	}
	if len(body) > MaxResponseSize {
		return nil, domain.RuntimeError(fmt.Sprintf("response body exceeds %d bytes", MaxResponseSize))
	}
	return body, nil
}
