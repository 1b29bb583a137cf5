package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connectserver.yaml")
	data := `
port: 3004
max_idle_time: 5s
max_connections_per_ip: 3
ignore_unknown_packets: true
rpc_port: 9000
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3004 {
		t.Errorf("expected port 3004, got %d", cfg.Port)
	}
	if cfg.MaxIdleTime.Get() != 5*time.Second {
		t.Errorf("expected 5s idle time, got %s", cfg.MaxIdleTime.Get())
	}
	if cfg.MaxConnectionsPerIP != 3 {
		t.Errorf("expected per-ip cap 3, got %d", cfg.MaxConnectionsPerIP)
	}
	if !cfg.IgnoreUnknownPackets {
		t.Error("expected ignore_unknown_packets set")
	}
	// Untouched keys keep their defaults.
	if cfg.MaxRequests != 20 {
		t.Errorf("expected default max_requests, got %d", cfg.MaxRequests)
	}
	if cfg.RPCPort != 9000 {
		t.Errorf("expected rpc port 9000, got %d", cfg.RPCPort)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_idle_time: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unparsable duration")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}

	bad := func(mutate func(*Config)) Config {
		cfg := Default()
		mutate(&cfg)
		return cfg
	}

	cases := map[string]Config{
		"negative port":    bad(func(c *Config) { c.Port = -1 }),
		"huge port":        bad(func(c *Config) { c.Port = 70000 }),
		"small packet cap": bad(func(c *Config) { c.MaxPacketSize = 3 }),
		"zero idle":        bad(func(c *Config) { c.MaxIdleTime = 0 }),
		"zero requests":    bad(func(c *Config) { c.MaxRequests = 0 }),
		"zero per ip":      bad(func(c *Config) { c.MaxConnectionsPerIP = 0 }),
		"bad level":        bad(func(c *Config) { c.LogLevel = "loud" }),
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestAddrs(t *testing.T) {
	cfg := Default()
	if got := cfg.ClientAddr(); got != "0.0.0.0:2004" {
		t.Errorf("unexpected client addr %s", got)
	}
	if got := cfg.RPCAddr(); got != "0.0.0.0:0" {
		t.Errorf("unexpected rpc addr %s", got)
	}
}
