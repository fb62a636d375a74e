package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/netprobe/internal/config"
	"github.com/nao1215/netprobe/internal/log"
	"github.com/nao1215/netprobe/internal/model"
	"github.com/nao1215/netprobe/internal/probe"
	"github.com/nao1215/netprobe/internal/report"
	"github.com/nao1215/netprobe/internal/socks"
	"github.com/spf13/cobra"
)

// exitInterrupted is the exit status used when a signal aborts a scan.
const exitInterrupted = 130

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <destination> <protocol>",
		Short: "Probe a destination over HTTP, HTTPS, FTP or SSH",
		Long: `Scan opens one TCP connection to the standard port of the given protocol
and classifies the destination:

  http   port 80   sends a HEAD request and waits for any reply
  https  port 443  sends a plain-text HEAD request and waits for any reply
  ftp    port 21   waits for the server banner
  ssh    port 22   waits for the server banner

The destination is UP when at least one byte is received, DOWN otherwise.
A DOWN result is not an error: the command exits 0 whenever a result was
produced.

Examples:
  # Check that an SSH server answers
  netprobe scan example.com ssh

  # Use a shorter timeout
  netprobe scan -t 3s example.com http

  # Probe through a local Tor daemon
  netprobe scan --proxy 127.0.0.1:9050 exampleonion.onion http

  # Write a Markdown report to a file
  netprobe scan -m -o reports/example.md example.com https

Configuration file (.netprobe) example:
  defaults:
    timeout: 5s
  destinations:
    example.com:
      proxy: socks5://127.0.0.1:9050`,
		Args: cobra.ExactArgs(2),
		RunE: runScanCmd,
	}

	cmd.Flags().DurationP(config.SettingTimeout, "t", config.DefaultTimeout,
		"Timeout for connecting and, separately, for reading the reply")
	cmd.Flags().Int(config.SettingReadSize, config.DefaultReadSize,
		"Maximum number of bytes read from the destination")
	cmd.Flags().StringP(config.SettingProxy, "x", "",
		"SOCKS5 proxy (host:port or socks5://[user:pass@]host:port)")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .netprobe in current directory, XDG config or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// A probe is bounded by its timeout and is not cancellable, so a signal
	// ends the process instead of cancelling the context.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Warn("received signal, aborting scan", "signal", sig.String())
			os.Exit(exitInterrupted)
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the credential-masking logger on stderr, in text or
// JSON form depending on --log-json.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		asJSON = false
	}
	if asJSON {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// buildConfig creates a Config from cobra command flags, positional
// arguments and the configuration file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected <destination> <protocol>, got %d argument(s)", len(args))
	}

	cfg := config.NewConfig()
	cfg.Destination = args[0]

	protocol, err := model.ParseProtocol(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrUnsupportedProtocol, err)
	}
	cfg.Protocol = protocol

	cfg.Verbose = getVerboseFlag(cmd)

	cfg.Timeout, err = cmd.Flags().GetDuration(config.SettingTimeout)
	if err != nil {
		return nil, err
	}

	cfg.ReadSize, err = cmd.Flags().GetInt(config.SettingReadSize)
	if err != nil {
		return nil, err
	}

	cfg.Proxy, err = cmd.Flags().GetString(config.SettingProxy)
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	file, err := loadConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}

	explicit := map[string]bool{
		config.SettingTimeout:  cmd.Flags().Changed(config.SettingTimeout),
		config.SettingReadSize: cmd.Flags().Changed(config.SettingReadSize),
		config.SettingProxy:    cmd.Flags().Changed(config.SettingProxy),
	}
	cfg.Merge(file.ForDestination(cfg.Destination), explicit)

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile loads the configuration file.
// If the user explicitly specified a path, a missing file is an error.
// Otherwise an empty configuration is used when no file is found.
func loadConfigFile(path string) (*config.File, error) {
	found := config.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, path)
		}
		return config.EmptyFile(), nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return file, nil
}

// runScan probes the configured destination once and writes the report.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	opts := []probe.Option{
		probe.WithTimeout(cfg.Timeout),
		probe.WithReadSize(cfg.ReadSize),
		probe.WithLogger(logger),
	}

	if cfg.Proxy != "" {
		client, err := newProxyClient(ctx, cfg, logger)
		if err != nil {
			return err
		}
		opts = append(opts, probe.WithDialer(client))
	}

	logger.Info("starting probe",
		"destination", cfg.Destination,
		"protocol", cfg.Protocol.String(),
		"port", cfg.Protocol.Port(),
		"timeout", cfg.Timeout,
		"proxy", cfg.Proxy,
	)

	result := probe.New(opts...).Scan(cfg.Destination, cfg.Protocol)

	logger.Debug("probe finished", "result", result.Compact())

	return outputReport(cfg, result, stdout)
}

// newProxyClient creates the SOCKS5 client and verifies the proxy answers.
func newProxyClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*socks.Client, error) {
	client, err := socks.NewClient(cfg.Proxy, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy client: %w", err)
	}

	status := client.CheckConnection(ctx)
	if status != socks.ProxyStatusOK {
		return nil, fmt.Errorf("proxy check failed: %w (make sure a SOCKS5 proxy is running at %s)",
			status.Error(), client.Address())
	}

	logger.Info("SOCKS5 proxy connection verified", "address", client.Address())

	return client, nil
}

// outputReport writes the result in the requested format. When a report
// file is requested, the one-line summary is still printed to stdout.
func outputReport(cfg *config.Config, result model.ScanResult, stdout io.Writer) error {
	if cfg.ReportFile == "" {
		_, err := newReportWriter(cfg, stdout).Write(result)
		return err
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := report.NewMultiWriter(
		report.NewSimpleWriter(stdout),
		newReportWriter(cfg, f),
	)
	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

// newReportWriter selects the report format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
