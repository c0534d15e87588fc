package docker

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newEngineServer serves handler on a fresh Unix socket and returns a client
// dialing it. The directory is kept short to stay under the socket path limit.
func newEngineServer(t *testing.T, handler http.Handler) *Client {
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

	transport, err := NewTransport(socket)
	require.NoError(t, err)
	t.Cleanup(transport.Close)

	return NewClient(transport)
}

func newRuntimeForHandler(t *testing.T, handler http.Handler, opts ...RuntimeOption) *Runtime {
	t.Helper()
	return NewRuntime(newEngineServer(t, handler), opts...)
}

// frame encodes one multiplexed log frame.
func frame(stream byte, payload string) []byte {
	size := len(payload)
	header := []byte{stream, 0, 0, 0, byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size)}
	return append(header, payload...)
}
