package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for netprobe.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "netprobe",
		Short: "Reachability prober for HTTP, HTTPS, FTP and SSH",
		Long: `netprobe opens a single TCP connection to the standard port of a protocol,
sends a minimal probe where the protocol needs one, and reports whether the
destination answered (UP) or not (DOWN) together with the response time.

Connections can be routed through a SOCKS5 proxy such as Tor with --proxy.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewProtocolsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
