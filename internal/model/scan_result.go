package model

import (
	"fmt"
	"time"
)

// ScanResult is the outcome of probing one destination over one protocol.
//
// A ScanResult is a plain value: it is created once by the prober and
// never modified afterwards. The struct is comparable, so == and Equal
// agree.
type ScanResult struct {
	// Protocol is the protocol that produced this result.
	Protocol Protocol `json:"protocol"`

	// Destination is the host name or address that was probed.
	Destination string `json:"destination"`

	// Status is the reachability classification.
	Status Status `json:"status"`

	// ResponseTime is the elapsed wall-clock time of the probe in
	// milliseconds, including connection and read time.
	ResponseTime float64 `json:"response_time_ms"`
}

// NewScanResult returns the unexecuted result for protocol and destination.
// Its status is StatusUnknown and its response time is zero.
func NewScanResult(protocol Protocol, destination string) ScanResult {
	return ScanResult{
		Protocol:    protocol,
		Destination: destination,
		Status:      StatusUnknown,
	}
}

// Equal reports whether all four fields of r and other are equal.
func (r ScanResult) Equal(other ScanResult) bool {
	return r.Protocol == other.Protocol &&
		r.Destination == other.Destination &&
		r.Status == other.Status &&
		r.ResponseTime == other.ResponseTime
}

// Executed reports whether the result comes from a completed probe.
func (r ScanResult) Executed() bool {
	return r.Status != StatusUnknown
}

// Duration returns the response time as a time.Duration.
func (r ScanResult) Duration() time.Duration {
	return time.Duration(r.ResponseTime * float64(time.Millisecond))
}

// String renders the result with a fixed field order and the response
// time to two decimal places, e.g.
//
//	ScanResult(protocol=SSH, destination=example.com, status=UP, response_time=12.34ms)
func (r ScanResult) String() string {
	return fmt.Sprintf("ScanResult(protocol=%s, destination=%s, status=%s, response_time=%.2fms)",
		r.Protocol, r.Destination, r.Status, r.ResponseTime)
}

// Compact renders the result in a short bracketed form, e.g.
//
//	ScanResult[SSH, example.com, UP, 12.34]
func (r ScanResult) Compact() string {
	return fmt.Sprintf("ScanResult[%s, %s, %s, %.2f]",
		r.Protocol, r.Destination, r.Status, r.ResponseTime)
}
