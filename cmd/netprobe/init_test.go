package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/nao1215/netprobe/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			shorthand string
			def       string
		}{
			{name: "output", shorthand: "o", def: configFileName},
			{name: "force", shorthand: "f", def: "false"},
			{name: "xdg", shorthand: "", def: "false"},
		}

		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected %s flag", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.def {
				t.Errorf("%s: expected default %q, got %q", tt.name, tt.def, flag.DefValue)
			}
		}
	})
}

// runInit executes the init command with args and returns its output.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates loadable config file", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".netprobe")

		out, err := runInit(t, "-o", outputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Created configuration file") {
			t.Errorf("unexpected output %q", out)
		}

		file, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("generated file does not load: %v", err)
		}
		if file.Defaults.Timeout != config.DefaultTimeout {
			t.Errorf("expected default timeout %v, got %v", config.DefaultTimeout, file.Defaults.Timeout)
		}
		if file.Defaults.ReadSize != config.DefaultReadSize {
			t.Errorf("expected default read size %d, got %d", config.DefaultReadSize, file.Defaults.ReadSize)
		}
		if file.Defaults.Proxy != "" {
			t.Errorf("expected no default proxy, got %q", file.Defaults.Proxy)
		}
	})

	t.Run("fails if file exists without force", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".netprobe")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := runInit(t, "-o", outputPath)
		if err == nil {
			t.Fatal("expected error when file exists")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected 'already exists' error, got %v", err)
		}
	})

	t.Run("overwrites file with force flag", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".netprobe")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if _, err := runInit(t, "-o", outputPath, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "subdir", "nested", ".netprobe")

		if _, err := runInit(t, "-o", outputPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(outputPath); err != nil {
			t.Errorf("expected config file to be created in nested directory: %v", err)
		}
	})

	t.Run("file has correct permissions", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("skipping permission test on Windows")
		}

		outputPath := filepath.Join(t.TempDir(), ".netprobe")
		if _, err := runInit(t, "-o", outputPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("failed to stat file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})

	t.Run("rejects xdg together with output", func(t *testing.T) {
		t.Parallel()

		_, err := runInit(t, "--xdg", "-o", filepath.Join(t.TempDir(), "x.yaml"))
		if err == nil {
			t.Fatal("expected error for --xdg with --output")
		}
	})
}

// TestRunInitCmdXDG writes the template into the XDG config directory.
// Not parallel: it changes XDG_CONFIG_HOME.
func TestRunInitCmdXDG(t *testing.T) {
	configHome := t.TempDir()
	// Registered first so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	if _, err := runInit(t, "--xdg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(configHome, config.AppName, "config.yaml")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected %s to exist: %v", want, err)
	}
}

// TestConfigTemplate tests the embedded config template.
func TestConfigTemplate(t *testing.T) {
	t.Parallel()

	content, err := configTemplate.ReadFile("templates/netprobe.yaml")
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}

	for _, want := range []string{"defaults:", "destinations:", "timeout:", "readSize:", "# proxy:"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected template to contain %q", want)
		}
	}
}
