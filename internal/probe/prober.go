package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/nao1215/netprobe/internal/model"
	"golang.org/x/net/proxy"
)

// Default probe settings.
const (
	// DefaultTimeout bounds the dial and, separately, the read.
	DefaultTimeout = 10 * time.Second

	// DefaultReadSize is the maximum number of bytes read from the peer.
	DefaultReadSize = 1024
)

// errEmptyResponse marks a connection that was closed without data.
var errEmptyResponse = errors.New("peer closed the connection without sending data")

// Prober performs reachability probes.
// The zero value is not usable; create one with New.
type Prober struct {
	// dialer opens the TCP connection for each probe.
	dialer proxy.Dialer

	// timeout bounds the dial and the read.
	timeout time.Duration

	// readSize is the size of the read buffer.
	readSize int

	// logger receives debug records for folded transport errors.
	logger *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout sets the dial and read timeout.
// Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithReadSize sets the maximum number of bytes read from the peer.
// Non-positive values are ignored.
func WithReadSize(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.readSize = n
		}
	}
}

// WithDialer sets the dialer used to open connections.
// Dialers that also implement proxy.ContextDialer are dialled with a
// deadline context; others are raced against the timeout.
func WithDialer(d proxy.Dialer) Option {
	return func(p *Prober) {
		if d != nil {
			p.dialer = d
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Prober with a direct dialer, a 10 second timeout and a
// 1024 byte read buffer, then applies opts.
func New(opts ...Option) *Prober {
	p := &Prober{
		dialer:   &net.Dialer{},
		timeout:  DefaultTimeout,
		readSize: DefaultReadSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Timeout returns the configured dial and read timeout.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// ReadSize returns the configured read buffer size.
func (p *Prober) ReadSize() int {
	return p.readSize
}

// Scan probes destination over protocol and returns the classified result.
// It performs at most one connection attempt and never returns an error.
func (p *Prober) Scan(destination string, protocol model.Protocol) model.ScanResult {
	switch protocol {
	case model.HTTP, model.HTTPS:
		return p.probe(destination, protocol, HTTPRequest(destination))
	case model.FTP, model.SSH:
		return p.probe(destination, protocol, nil)
	default:
		return model.ScanResult{
			Protocol:    protocol,
			Destination: destination,
			Status:      model.StatusUnsupported,
		}
	}
}

// HTTPRequest returns the HEAD request sent by HTTP and HTTPS probes.
func HTTPRequest(destination string) []byte {
	return []byte("HEAD / HTTP/1.1\r\nHost: " + destination + "\r\n\r\n")
}

// probe runs one timed attempt. request is written before reading when it
// is non-empty.
func (p *Prober) probe(destination string, protocol model.Protocol, request []byte) model.ScanResult {
	start := time.Now()

	status := model.StatusUp
	if err := p.exchange(destination, protocol.Port(), request); err != nil {
		status = model.StatusDown
		p.logger.Debug("probe failed",
			"protocol", protocol.String(),
			"destination", destination,
			"error", err.Error(),
		)
	}

	elapsed := time.Since(start)

	return model.ScanResult{
		Protocol:     protocol,
		Destination:  destination,
		Status:       status,
		ResponseTime: milliseconds(elapsed),
	}
}

// exchange connects, optionally writes request and reads the first bytes of
// the response. A nil error means at least one byte was received.
func (p *Prober) exchange(destination string, port int, request []byte) error {
	address := net.JoinHostPort(destination, strconv.Itoa(port))

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	conn, err := p.dialWithContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", address, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(p.timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	if len(request) > 0 {
		if _, err := conn.Write(request); err != nil {
			return fmt.Errorf("write request: %w", err)
		}
	}

	buf := make([]byte, p.readSize)
	n, err := conn.Read(buf)
	if n > 0 {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return errEmptyResponse
	}
	return fmt.Errorf("read response: %w", err)
}

// dialWithContext dials address, respecting ctx even for dialers that do
// not accept a context.
func (p *Prober) dialWithContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d, ok := p.dialer.(proxy.ContextDialer); ok {
		return d.DialContext(ctx, network, address)
	}

	type dialResult struct {
		conn net.Conn
		err  error
	}

	resultCh := make(chan dialResult, 1)

	go func() {
		conn, err := p.dialer.Dial(network, address)
		resultCh <- dialResult{conn, err}
	}()

	select {
	case <-ctx.Done():
		// The dial goroutine may still succeed; close that connection.
		go func() {
			if r := <-resultCh; r.conn != nil {
				_ = r.conn.Close() //nolint:errcheck // nothing to report
			}
		}()
		return nil, ctx.Err()
	case result := <-resultCh:
		return result.conn, result.err
	}
}

// milliseconds converts d into fractional milliseconds.
func milliseconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
