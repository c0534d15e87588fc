package docker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/localcontainers/internal/domain"
)

// DefaultPullTimeout bounds a whole image pull, which streams for a while.
const DefaultPullTimeout = 300 * time.Second

// Client speaks the versioned Engine API on top of a Transport. It owns
// encoding, decoding, and the mapping of engine failures onto domain errors.
type Client struct {
	transport   *Transport
	pullTimeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPullTimeout overrides the image pull timeout.
func WithPullTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.pullTimeout = timeout
	}
}

// NewClient creates an engine client over transport.
func NewClient(transport *Transport, opts ...ClientOption) *Client {
	c := &Client{
		transport:   transport,
		pullTimeout: DefaultPullTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transport returns the underlying transport.
func (c *Client) Transport() *Transport {
	return c.transport
}

// PullImage pulls reference and consumes the NDJSON progress stream.
// The first record carrying an error fails the pull.
func (c *Client) PullImage(ctx context.Context, reference string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "PullImage",
		"image":               reference,
	})
	log := zerowrap.FromCtx(ctx)

	repository, tag := ParseImageReference(reference)

	resp, cancel, err := c.transport.stream(ctx, request{
		method:  http.MethodPost,
		path:    "/images/create",
		query:   url.Values{"fromImage": {repository}, "tag": {tag}},
		timeout: c.pullTimeout,
	})
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxResponseSize)

	var lastStatus string
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var msg jsonmessage.JSONMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			continue
		}

		if reason := pullError(msg); reason != "" {
			log.Warn().Str("reason", reason).Msg("image pull reported an error")
			return domain.ImagePullFailed(reference, reason)
		}
		if msg.Status != "" {
			lastStatus = msg.Status
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.WrapRuntimeError("failed to read pull stream", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ImagePullFailed(reference, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	log.Info().Str("status", lastStatus).Msg("image pulled")
	return nil
}

func pullError(msg jsonmessage.JSONMessage) string {
	if msg.Error != nil && msg.Error.Message != "" {
		return msg.Error.Message
	}
	return msg.ErrorMessage //nolint:staticcheck
}

// CreateContainer creates a container from req. An empty name lets the
// daemon pick one.
func (c *Client) CreateContainer(ctx context.Context, req container.CreateRequest, name string) (container.CreateResponse, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateContainer",
		"container_name":      name,
	})
	log := zerowrap.FromCtx(ctx)

	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	resp, err := c.transport.do(ctx, request{
		method: http.MethodPost,
		path:   "/containers/create",
		query:  query,
		body:   req,
	})
	if err != nil {
		return container.CreateResponse{}, err
	}

	var created container.CreateResponse
	if err := json.Unmarshal(resp.body, &created); err != nil {
		return container.CreateResponse{}, domain.WrapRuntimeError("failed to decode create response", err)
	}

	for _, warning := range created.Warnings {
		log.Warn().Str(zerowrap.FieldEntityID, created.ID).Msg(warning)
	}

	return created, nil
}

// StartContainer starts id. Starting a running container succeeds.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	_, err := c.transport.do(ctx, request{
		method:      http.MethodPost,
		path:        "/containers/" + id + "/start",
		containerID: id,
		accept:      []int{http.StatusNotModified},
	})
	return err
}

// StopContainer stops id, killing it after the grace period. Stopping a
// stopped container succeeds.
func (c *Client) StopContainer(ctx context.Context, id string, grace time.Duration) error {
	seconds := int(grace.Round(time.Second) / time.Second)

	_, err := c.transport.do(ctx, request{
		method:      http.MethodPost,
		path:        "/containers/" + id + "/stop",
		query:       url.Values{"t": {strconv.Itoa(seconds)}},
		containerID: id,
		accept:      []int{http.StatusNotModified},
		// the daemon holds the request open for the whole grace period
		timeout: c.transport.timeout + grace,
	})
	return err
}

// RemoveContainer deletes id along with its anonymous volumes.
func (c *Client) RemoveContainer(ctx context.Context, id string, force bool) error {
	_, err := c.transport.do(ctx, request{
		method:      http.MethodDelete,
		path:        "/containers/" + id,
		query:       url.Values{"force": {strconv.FormatBool(force)}, "v": {"true"}},
		containerID: id,
	})
	return err
}

// InspectContainer returns the daemon's full view of id.
func (c *Client) InspectContainer(ctx context.Context, id string) (container.InspectResponse, error) {
	resp, err := c.transport.do(ctx, request{
		method:      http.MethodGet,
		path:        "/containers/" + id + "/json",
		containerID: id,
	})
	if err != nil {
		return container.InspectResponse{}, err
	}

	var inspected container.InspectResponse
	if err := json.Unmarshal(resp.body, &inspected); err != nil {
		return container.InspectResponse{}, domain.WrapRuntimeError("failed to decode inspect response", err)
	}
	return inspected, nil
}

// ContainerLogs returns stdout and stderr of id as plain text.
func (c *Client) ContainerLogs(ctx context.Context, id string) (string, error) {
	resp, err := c.transport.do(ctx, request{
		method:      http.MethodGet,
		path:        "/containers/" + id + "/logs",
		query:       url.Values{"stdout": {"1"}, "stderr": {"1"}},
		containerID: id,
	})
	if err != nil {
		return "", err
	}
	return DemuxLogs(resp.body), nil
}

// EngineVersion is the subset of GET /version the client cares about.
type EngineVersion struct {
	Version       string `json:"Version"`
	APIVersion    string `json:"ApiVersion"`
	MinAPIVersion string `json:"MinAPIVersion"`
	OS            string `json:"Os"`
	Arch          string `json:"Arch"`
}

// Version queries the daemon version. The path is not version-prefixed so
// that it answers even when the client's API version is unsupported.
func (c *Client) Version(ctx context.Context) (EngineVersion, error) {
	resp, err := c.transport.do(ctx, request{
		method:      http.MethodGet,
		path:        "/version",
		unversioned: true,
	})
	if err != nil {
		return EngineVersion{}, err
	}

	var version EngineVersion
	if err := json.Unmarshal(resp.body, &version); err != nil {
		return EngineVersion{}, domain.WrapRuntimeError("failed to decode version response", err)
	}
	version.APIVersion = strings.TrimPrefix(version.APIVersion, "v")
	version.MinAPIVersion = strings.TrimPrefix(version.MinAPIVersion, "v")
	return version, nil
}
