// Package main provides the entry point for the netprobe CLI.
//
// netprobe checks whether a destination answers on the standard port of
// HTTP, HTTPS, FTP or SSH and reports how long it took.
//
// Usage:
//
//	netprobe scan <destination> <protocol>
//	netprobe protocols
//
// See --help for all available options.
package main

// main is the entry point for netprobe.
func main() {
	Execute()
}
