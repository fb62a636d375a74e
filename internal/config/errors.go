package config

import "errors"

// Configuration errors.
// These errors are returned by Validate when the configuration is invalid.
var (
	// ErrNoDestination is returned when no destination is given.
	ErrNoDestination = errors.New("no destination specified: provide a host name or address")

	// ErrUnsupportedProtocol is returned when the protocol is outside
	// http, https, ftp and ssh.
	ErrUnsupportedProtocol = errors.New("unsupported protocol: must be one of http, https, ftp, ssh")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidReadSize is returned when the read size is not positive.
	ErrInvalidReadSize = errors.New("invalid read size: must be positive")

	// ErrConflictingReportFormats is returned when both JSON and Markdown
	// output are requested.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
