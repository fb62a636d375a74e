package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/netprobe/internal/model"
)

// Default configuration values.
const (
	// DefaultTimeout bounds the connection attempt and, separately, the
	// read of the first response bytes.
	DefaultTimeout = 10 * time.Second

	// DefaultReadSize is the maximum number of bytes read from the peer.
	// One read of any size is enough to classify an endpoint as UP.
	DefaultReadSize = 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "netprobe"
)

// Config holds all options of a single netprobe run.
// It is populated from CLI flags and the configuration file and passed down
// explicitly rather than kept in global state.
type Config struct {
	// Destination is the host name or IP address to probe.
	// It is not validated beyond being non-empty; an unresolvable name
	// simply produces a DOWN result.
	Destination string

	// Protocol selects the probe and its port.
	Protocol model.Protocol

	// Timeout bounds the dial and the read.
	Timeout time.Duration

	// ReadSize is the maximum number of bytes read from the peer.
	ReadSize int

	// Proxy is an optional SOCKS5 proxy, either host:port or a
	// socks5:// URL. Empty means a direct connection.
	Proxy string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given on the command line.
	// When empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with
	// JSONReport.
	MarkdownReport bool

	// ReportFile is the path the report is written to. Empty means stdout.
	ReportFile string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Timeout:  DefaultTimeout,
		ReadSize: DefaultReadSize,
	}
}

// XDGConfigDir returns the XDG config directory for netprobe.
// On Linux: ~/.config/netprobe
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file inside the XDG
// config directory.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks the configuration and returns the first problem found.
// It runs once after flag parsing, before any probe.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Destination) == "" {
		return ErrNoDestination
	}

	if !c.Protocol.Supported() {
		return ErrUnsupportedProtocol
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.ReadSize <= 0 {
		return ErrInvalidReadSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// Setting names used by Merge to tell which values came from flags.
const (
	SettingTimeout  = "timeout"
	SettingReadSize = "read-size"
	SettingProxy    = "proxy"
)

// Merge applies the file settings in dc to c. Settings listed in explicit
// were set on the command line and are left untouched, as are zero values
// in dc.
func (c *Config) Merge(dc DestinationConfig, explicit map[string]bool) {
	if dc.Timeout > 0 && !explicit[SettingTimeout] {
		c.Timeout = dc.Timeout
	}
	if dc.ReadSize > 0 && !explicit[SettingReadSize] {
		c.ReadSize = dc.ReadSize
	}
	if dc.Proxy != "" && !explicit[SettingProxy] {
		c.Proxy = dc.Proxy
	}
}
