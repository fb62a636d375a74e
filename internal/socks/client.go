package socks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// checkTimeout bounds the SOCKS5 greeting performed by CheckConnection.
const checkTimeout = 2 * time.Second

// SOCKS5 protocol constants used by the greeting check.
const (
	socks5Version      = 0x05
	socks5AuthNone     = 0x00
	socks5AuthPassword = 0x02
	socks5AuthNoAccept = 0xFF
)

// Client dials through a SOCKS5 proxy.
type Client struct {
	// address is the proxy address in host:port form.
	address string

	// auth holds optional username/password credentials.
	auth *proxy.Auth

	// dialer is the SOCKS5 dialer built by x/net/proxy.
	dialer proxy.Dialer
}

// NewClient creates a Client for the proxy at raw.
// timeout bounds the TCP connection to the proxy itself. The proxy is not
// contacted until the first dial or CheckConnection.
func NewClient(raw string, timeout time.Duration) (*Client, error) {
	address, auth, err := ParseProxy(raw)
	if err != nil {
		return nil, err
	}

	forward := &net.Dialer{Timeout: timeout}
	dialer, err := proxy.SOCKS5("tcp", address, auth, forward)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}

	return &Client{
		address: address,
		auth:    auth,
		dialer:  dialer,
	}, nil
}

// ParseProxy splits a proxy setting into its host:port address and
// optional credentials. raw is either a bare host:port or a socks5 or
// socks5h URL.
func ParseProxy(raw string) (string, *proxy.Auth, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		if !isValidProxyAddress(raw) {
			return "", nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, raw)
		}
		return raw, nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidProxyAddress, err)
	}

	switch u.Scheme {
	case "socks5", "socks5h":
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	if !isValidProxyAddress(u.Host) {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, u.Host)
	}

	var auth *proxy.Auth
	if u.User != nil {
		password, _ := u.User.Password()
		auth = &proxy.Auth{
			User:     u.User.Username(),
			Password: password,
		}
	}

	return u.Host, auth, nil
}

// isValidProxyAddress reports whether address is host:port with a
// non-empty host and a port in 1..65535.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}

// Address returns the proxy address in host:port form.
func (c *Client) Address() string {
	return c.address
}

// HasAuth reports whether username/password credentials are configured.
func (c *Client) HasAuth() bool {
	return c.auth != nil
}

// Dial connects to address through the proxy.
func (c *Client) Dial(network, address string) (net.Conn, error) {
	return c.dialer.Dial(network, address)
}

// DialContext connects to address through the proxy, honouring ctx.
func (c *Client) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if d, ok := c.dialer.(proxy.ContextDialer); ok {
		return d.DialContext(ctx, network, address)
	}

	type dialResult struct {
		conn net.Conn
		err  error
	}
	resultCh := make(chan dialResult, 1)

	go func() {
		conn, err := c.dialer.Dial(network, address)
		resultCh <- dialResult{conn, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultCh:
		return result.conn, result.err
	}
}

// CheckConnection performs the SOCKS5 method negotiation with the proxy and
// reports whether it is usable.
//
// The check offers "no authentication", plus username/password when the
// client has credentials, and accepts either if the proxy selects it.
func (c *Client) CheckConnection(ctx context.Context) ProxyStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.address)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ProxyStatusTimeout
		}
		return ProxyStatusCannotConnect
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(checkTimeout)); err != nil {
		return ProxyStatusCannotConnect
	}

	greeting := []byte{socks5Version, 0x01, socks5AuthNone}
	if c.auth != nil {
		greeting = []byte{socks5Version, 0x02, socks5AuthNone, socks5AuthPassword}
	}
	if _, err := conn.Write(greeting); err != nil {
		return ProxyStatusCannotConnect
	}

	resp := make([]byte, 2)
	if _, err := io.ReadFull(conn, resp); err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return ProxyStatusTimeout
		}
		return ProxyStatusWrongType
	}

	if resp[0] != socks5Version {
		return ProxyStatusWrongType
	}

	switch resp[1] {
	case socks5AuthNone:
		return ProxyStatusOK
	case socks5AuthPassword:
		if c.auth != nil {
			return ProxyStatusOK
		}
		return ProxyStatusWrongType
	default:
		return ProxyStatusWrongType
	}
}
