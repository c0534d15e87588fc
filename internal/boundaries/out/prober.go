package out

import "context"

// TCPProber checks whether a TCP endpoint accepts connections.
// Probe must return within a bounded time even if the peer never answers.
type TCPProber interface {
	Probe(ctx context.Context, host string, port uint16) bool
}
