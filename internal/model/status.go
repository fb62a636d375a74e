package model

// Status is the reachability classification produced by a probe.
type Status int

const (
	// StatusUnknown is the status of a result that has not been probed yet.
	StatusUnknown Status = iota

	// StatusUp means the endpoint accepted the connection and sent at
	// least one byte of application data.
	StatusUp

	// StatusDown means the connection failed or the peer sent nothing.
	// Refused, timed out, unresolvable and silently closed endpoints all
	// end up here.
	StatusDown

	// StatusUnsupported means the protocol is outside the supported set and
	// no connection was attempted.
	StatusUnsupported
)

// String returns the upper-case status name.
func (s Status) String() string {
	switch s {
	case StatusUp:
		return "UP"
	case StatusDown:
		return "DOWN"
	case StatusUnsupported:
		return "UNSUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
