package main

import (
	"fmt"
	"strings"

	"github.com/nao1215/netprobe/internal/model"
	"github.com/spf13/cobra"
)

// NewProtocolsCmd creates the protocols command.
func NewProtocolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List supported protocols and their ports",
		Long: `List the protocols accepted by "netprobe scan", the TCP port each one
is probed on, and what is sent after connecting.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-6s %s\n", "PROTOCOL", "PORT", "PROBE")
			for _, p := range model.Protocols() {
				fmt.Fprintf(out, "%-8s %-6d %s\n", strings.ToLower(p.String()), p.Port(), probeDescription(p))
			}
		},
	}
}

// probeDescription describes what the prober sends for p.
func probeDescription(p model.Protocol) string {
	if p.SendsRequest() {
		return "HEAD request"
	}
	return "banner read"
}
