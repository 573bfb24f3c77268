package tui

import (
	"path/filepath"
	"testing"

	"github.com/BlueyDragon/mdn-breakout-game/internal/config"
	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("IdleTimeout should be positive")
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, registry.Options{Config: config.DefaultBreakoutConfig()})
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
