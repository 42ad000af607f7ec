package orrery

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Framerate <= 0 {
		t.Fatalf("framerate = %f, want positive", cfg.Framerate)
	}
	if cfg.DefaultThreads < 1 {
		t.Fatalf("default threads = %d, want >= 1", cfg.DefaultThreads)
	}
	if cfg.GravitationalConstant != G {
		t.Fatalf("gravitational constant = %e, want %e", cfg.GravitationalConstant, G)
	}
	if cfg.DefaultMethod != Symplectic(4) {
		t.Fatalf("default method = %s, want Symplectic(4)", cfg.DefaultMethod)
	}
}

func TestLoadConfigWithoutEnvFallsBackToDefaults(t *testing.T) {
	os.Unsetenv("ORRERY_CONFIG")
	cfg, loaded := LoadConfig()
	if loaded {
		t.Fatal("expected loadedFromFile=false with no ORRERY_CONFIG set")
	}
	if cfg.Framerate != DefaultConfig().Framerate {
		t.Fatalf("expected default framerate, got %f", cfg.Framerate)
	}
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	os.Setenv("ORRERY_CONFIG", "/nonexistent/path/to/orrery.toml")
	defer os.Unsetenv("ORRERY_CONFIG")
	cfg, loaded := LoadConfig()
	if loaded {
		t.Fatal("expected loadedFromFile=false for a missing config file")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want default info", cfg.LogLevel)
	}
}
