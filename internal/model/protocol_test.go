package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestProtocolPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		protocol Protocol
		port     int
		name     string
	}{
		{HTTP, 80, "HTTP"},
		{HTTPS, 443, "HTTPS"},
		{FTP, 21, "FTP"},
		{SSH, 22, "SSH"},
		{Protocol(0), 0, "Protocol(0)"},
		{Protocol(99), 0, "Protocol(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.protocol.Port(); got != tt.port {
				t.Errorf("Port() = %d, want %d", got, tt.port)
			}
			if got := tt.protocol.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.protocol.Supported(); got != (tt.port != 0) {
				t.Errorf("Supported() = %v, want %v", got, tt.port != 0)
			}
		})
	}
}

func TestProtocolSendsRequest(t *testing.T) {
	t.Parallel()

	want := map[Protocol]bool{HTTP: true, HTTPS: true, FTP: false, SSH: false}
	for p, sends := range want {
		if got := p.SendsRequest(); got != sends {
			t.Errorf("%s.SendsRequest() = %v, want %v", p, got, sends)
		}
	}
}

func TestProtocols(t *testing.T) {
	t.Parallel()

	got := Protocols()
	want := []Protocol{HTTP, HTTPS, FTP, SSH}
	if len(got) != len(want) {
		t.Fatalf("expected %d protocols, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Protocols()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseProtocol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Protocol
		wantErr bool
	}{
		{input: "http", want: HTTP},
		{input: "HTTP", want: HTTP},
		{input: "Https", want: HTTPS},
		{input: "ftp", want: FTP},
		{input: " Ssh ", want: SSH},
		{input: "smtp", wantErr: true},
		{input: "", wantErr: true},
		{input: "http2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseProtocol(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownProtocol) {
					t.Errorf("expected ErrUnknownProtocol, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseProtocol(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestProtocolText(t *testing.T) {
	t.Parallel()

	t.Run("marshals by name", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(FTP)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"FTP"` {
			t.Errorf("expected \"FTP\", got %s", data)
		}
	})

	t.Run("unmarshals by name", func(t *testing.T) {
		t.Parallel()

		var p Protocol
		if err := json.Unmarshal([]byte(`"ssh"`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p != SSH {
			t.Errorf("expected SSH, got %s", p)
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		t.Parallel()

		var p Protocol
		err := json.Unmarshal([]byte(`"gopher"`), &p)
		if !errors.Is(err, ErrUnknownProtocol) {
			t.Errorf("expected ErrUnknownProtocol, got %v", err)
		}
	})
}
