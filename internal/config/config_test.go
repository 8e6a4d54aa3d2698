package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.PublicBaseURL != "http://localhost:8080" {
		t.Errorf("PublicBaseURL = %q", cfg.Server.PublicBaseURL)
	}
	if cfg.Session.SimulatedLatency != 800*time.Millisecond {
		t.Errorf("SimulatedLatency = %v", cfg.Session.SimulatedLatency)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SIMULATED_LATENCY", "50ms")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Session.SimulatedLatency != 50*time.Millisecond {
		t.Errorf("SimulatedLatency = %v", cfg.Session.SimulatedLatency)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsBadLatency(t *testing.T) {
	t.Setenv("SIMULATED_LATENCY", "fast")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable SIMULATED_LATENCY")
	}
}
