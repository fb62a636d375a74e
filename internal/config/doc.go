// Package config holds the settings of a netprobe run: the probe target,
// the probe tuning knobs, the transport and the report format.
//
// Settings come from three places, highest priority first:
//  1. command-line flags explicitly set by the user
//  2. the YAML configuration file (per-destination entry, then defaults)
//  3. the built-in defaults from NewConfig
package config
