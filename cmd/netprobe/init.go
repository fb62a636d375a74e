package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/netprobe/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/netprobe.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new netprobe configuration file",
		Long: `Initialize creates a new .netprobe configuration file in the current directory.

The generated file includes:
- Default timeout and read size
- Commented examples for per-destination overrides and proxies

Examples:
  # Create .netprobe in current directory
  netprobe init

  # Create config file at a specific path
  netprobe init -o myconfig.yaml

  # Create the file in the XDG config directory
  netprobe init --xdg

  # Force overwrite existing file
  netprobe init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().Bool("xdg", false,
		"Write to $XDG_CONFIG_HOME/netprobe/config.yaml instead of --output")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return err
	}
	if useXDG {
		if cmd.Flags().Changed("output") {
			return errors.New("--xdg and --output cannot be used together")
		}
		outputPath = config.XDGConfigFile()
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/netprobe.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Proxy credentials may end up in this file.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure settings such as:")
	fmt.Fprintln(out, "  - Default timeout and read size")
	fmt.Fprintln(out, "  - A SOCKS5 proxy for all or some destinations")

	return nil
}
