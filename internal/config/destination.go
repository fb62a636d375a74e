package config

import "time"

// DestinationConfig holds probe settings that can be set per destination in
// the configuration file.
//
// Example YAML:
//
//	destinations:
//	  example.com:
//	    timeout: 3s
//	    proxy: 127.0.0.1:9050
type DestinationConfig struct {
	// Timeout bounds the dial and the read, e.g. "5s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// ReadSize is the maximum number of bytes read from the peer.
	ReadSize int `yaml:"readSize,omitempty"`

	// Proxy is a SOCKS5 proxy address or URL.
	Proxy string `yaml:"proxy,omitempty"`
}

// File is the structure of the configuration file.
type File struct {
	// Defaults apply to every destination.
	Defaults DestinationConfig `yaml:"defaults,omitempty"`

	// Destinations maps a destination to its overrides.
	Destinations map[string]DestinationConfig `yaml:"destinations,omitempty"`
}

// ForDestination returns the defaults with the non-zero settings of the
// matching destination entry laid over them.
func (f *File) ForDestination(destination string) DestinationConfig {
	result := f.Defaults

	dc, ok := f.Destinations[destination]
	if !ok {
		return result
	}

	if dc.Timeout > 0 {
		result.Timeout = dc.Timeout
	}
	if dc.ReadSize > 0 {
		result.ReadSize = dc.ReadSize
	}
	if dc.Proxy != "" {
		result.Proxy = dc.Proxy
	}

	return result
}
