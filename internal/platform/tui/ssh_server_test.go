package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func TestNewSSHServerRequiresGameFactory(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg)
	if err == nil {
		t.Fatal("expected an error without a game factory")
	}
	if srv != nil {
		t.Error("no server should be returned on error")
	}
}

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = keyPath
	cfg.Logger = log.New(io.Discard)
	cfg.NewGame = func() Game {
		return invaders.New(config.DefaultInvadersConfig())
	}

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("addr = %q", srv.Addr())
	}
	if _, statErr := os.Stat(keyPath); statErr != nil {
		t.Errorf("host key not created: %v", statErr)
	}
}
