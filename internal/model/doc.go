// Package model defines the data structures shared by the prober, the report
// writers and the CLI.
//
// This package contains the following main types:
//   - Protocol: The closed set of probed protocols and their standard ports
//   - Status: The coarse reachability classification of a probe
//   - ScanResult: The immutable outcome of a single probe
//
// Models live in their own package so that probe, report and config can all
// depend on them without import cycles.
//
// ScanResult is a comparable value type. Two results are equal when protocol,
// destination, status and response time are all equal, so both == and
// ScanResult.Equal can be used.
package model
