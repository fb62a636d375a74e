package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownProtocol is returned by ParseProtocol when the name does not
// match any supported protocol.
var ErrUnknownProtocol = errors.New("unknown protocol")

// Protocol identifies the application protocol a probe speaks.
// The zero value is not a member of the set; any integer outside
// HTTP..SSH is treated as unsupported by the prober.
type Protocol int

const (
	// HTTP probes port 80 with a HEAD request.
	HTTP Protocol = iota + 1

	// HTTPS probes port 443 with a plaintext HEAD request.
	// No TLS handshake is performed.
	HTTPS

	// FTP probes port 21 and waits for the welcome banner.
	FTP

	// SSH probes port 22 and waits for the version banner.
	SSH
)

// Standard TCP ports for each protocol.
const (
	PortHTTP  = 80
	PortHTTPS = 443
	PortFTP   = 21
	PortSSH   = 22
)

// Protocols returns every supported protocol in declaration order.
func Protocols() []Protocol {
	return []Protocol{HTTP, HTTPS, FTP, SSH}
}

// String returns the upper-case protocol name.
func (p Protocol) String() string {
	switch p {
	case HTTP:
		return "HTTP"
	case HTTPS:
		return "HTTPS"
	case FTP:
		return "FTP"
	case SSH:
		return "SSH"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// Port returns the standard TCP port of the protocol, or 0 when the
// protocol is not supported.
func (p Protocol) Port() int {
	switch p {
	case HTTP:
		return PortHTTP
	case HTTPS:
		return PortHTTPS
	case FTP:
		return PortFTP
	case SSH:
		return PortSSH
	default:
		return 0
	}
}

// Supported reports whether p is one of HTTP, HTTPS, FTP or SSH.
func (p Protocol) Supported() bool {
	return p.Port() != 0
}

// SendsRequest reports whether the probe writes a request before reading.
// FTP and SSH servers banner on connect, HTTP servers wait for the client.
func (p Protocol) SendsRequest() bool {
	return p == HTTP || p == HTTPS
}

// ParseProtocol converts a protocol name such as "http" or "SSH" into a
// Protocol. Matching is case-insensitive and ignores surrounding spaces.
func ParseProtocol(name string) (Protocol, error) {
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(name))
	for _, p := range Protocols() {
		if folder.String(p.String()) == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
}

// MarshalText encodes the protocol by name so JSON and YAML output stay
// readable.
func (p Protocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a protocol name.
func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
