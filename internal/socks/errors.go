package socks

import "errors"

// Proxy errors.
var (
	// ErrInvalidProxyAddress is returned when the proxy address cannot be
	// parsed into host and port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port or socks5://host:port")

	// ErrUnsupportedScheme is returned for proxy URLs whose scheme is not
	// socks5 or socks5h.
	ErrUnsupportedScheme = errors.New("unsupported proxy scheme: only socks5 and socks5h are supported")

	// ErrProxyNotSOCKS5 is returned when the proxy answers but does not
	// speak SOCKS5.
	ErrProxyNotSOCKS5 = errors.New("proxy is not a SOCKS5 proxy")

	// ErrProxyCannotConnect is returned when no TCP connection to the proxy
	// can be established.
	ErrProxyCannotConnect = errors.New("cannot connect to SOCKS5 proxy")

	// ErrProxyTimeout is returned when the proxy does not answer in time.
	ErrProxyTimeout = errors.New("timeout connecting to SOCKS5 proxy")
)

// ProxyStatus is the result of checking a proxy.
type ProxyStatus int

const (
	// ProxyStatusOK indicates a working SOCKS5 proxy.
	ProxyStatusOK ProxyStatus = iota

	// ProxyStatusWrongType indicates the peer answered but is not a usable
	// SOCKS5 proxy.
	ProxyStatusWrongType

	// ProxyStatusCannotConnect indicates the proxy could not be reached.
	ProxyStatusCannotConnect

	// ProxyStatusTimeout indicates the check timed out.
	ProxyStatusTimeout
)

// String returns a human-readable description of the proxy status.
func (s ProxyStatus) String() string {
	switch s {
	case ProxyStatusOK:
		return "OK"
	case ProxyStatusWrongType:
		return "wrong type (not SOCKS5)"
	case ProxyStatusCannotConnect:
		return "cannot connect"
	case ProxyStatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error returns the matching sentinel error, or nil for ProxyStatusOK.
func (s ProxyStatus) Error() error {
	switch s {
	case ProxyStatusOK:
		return nil
	case ProxyStatusWrongType:
		return ErrProxyNotSOCKS5
	case ProxyStatusCannotConnect:
		return ErrProxyCannotConnect
	case ProxyStatusTimeout:
		return ErrProxyTimeout
	default:
		return errors.New("unknown proxy status")
	}
}
