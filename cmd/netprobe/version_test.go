package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() string
	}{
		{name: "version", fn: getVersion},
		{name: "commit", fn: getCommit},
		{name: "date", fn: getDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// ldflags value, build info, or a fixed fallback
			if got := tt.fn(); got == "" {
				t.Errorf("%s returned empty string", tt.name)
			}
		})
	}

	t.Run("commit is abbreviated", func(t *testing.T) {
		t.Parallel()
		if got := getCommit(); got != "unknown" && len(got) > shortCommitLen {
			t.Errorf("expected at most %d characters, got %q", shortCommitLen, got)
		}
	})
}

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("command has correct use", func(t *testing.T) {
		t.Parallel()
		cmd := NewVersionCmd()
		if cmd.Use != "version" {
			t.Errorf("expected Use to be 'version', got %q", cmd.Use)
		}
	})

	t.Run("command outputs version info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"netprobe version", "commit:", "built:", "platform:"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		cmd := NewVersionCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unexpected argument")
		}
	})
}
