package probe

import (
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/netprobe/internal/model"
	"golang.org/x/crypto/ssh"
)

// sshServerVersion is the identification string announced by the test server.
const sshServerVersion = "SSH-2.0-netprobe_test"

// sshHandler runs the server side of an SSH handshake. The server sends its
// identification string before anything else, which is all the prober needs.
func sshHandler(t *testing.T) func(net.Conn) {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate host key: %v", err)
	}
	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	cfg := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: sshServerVersion,
	}
	cfg.AddHostKey(signer)

	return func(conn net.Conn) {
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
		// The prober hangs up after the banner, so the handshake always fails.
		_, _, _, _ = ssh.NewServerConn(conn, cfg) //nolint:dogsled // only the banner matters
	}
}

func TestProberScanRealSSHServer(t *testing.T) {
	t.Parallel()

	t.Run("banner makes the server UP", func(t *testing.T) {
		t.Parallel()

		d := &redirectDialer{target: serve(t, sshHandler(t))}
		p := New(WithDialer(d), WithTimeout(5*time.Second))

		result := p.Scan("ssh.example", model.SSH)
		if result.Status != model.StatusUp {
			t.Fatalf("expected UP, got %s", result.Status)
		}
		if got := d.addresses(); len(got) != 1 || got[0] != "ssh.example:22" {
			t.Errorf("expected one dial to ssh.example:22, got %v", got)
		}
	})

	t.Run("banner is the first thing read", func(t *testing.T) {
		t.Parallel()

		addr := serve(t, sshHandler(t))
		conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
		if err != nil {
			t.Fatalf("failed to dial: %v", err)
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		buf := make([]byte, DefaultReadSize)
		n, err := conn.Read(buf)
		if err != nil {
			t.Fatalf("failed to read banner: %v", err)
		}
		if !strings.HasPrefix(string(buf[:n]), sshServerVersion) {
			t.Errorf("expected banner %q, got %q", sshServerVersion, buf[:n])
		}
	})
}
