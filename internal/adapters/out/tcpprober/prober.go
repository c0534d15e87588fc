// Package tcpprober provides TCP reachability probing for the port readiness check.
package tcpprober

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/localcontainers/internal/boundaries/out"
)

// DefaultTimeout bounds a single connect attempt.
const DefaultTimeout = 500 * time.Millisecond

var _ out.TCPProber = (*Prober)(nil)

// Prober implements the TCPProber interface with a plain connect.
type Prober struct {
	timeout time.Duration
}

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the connect timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// New creates a new TCP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe reports whether host:port accepts a TCP connection within the
// timeout. The connection is closed right away.
func (p *Prober) Probe(ctx context.Context, host string, port uint16) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Debug().Err(err).Str("address", address).Msg("tcp probe failed")
		return false
	}
	_ = conn.Close()

	return true
}
