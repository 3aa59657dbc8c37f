package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret is empty, want the fallback")
	}
	if cfg.ComputeRequestStream == "" || cfg.ComputeResultStream == "" {
		t.Error("compute stream names are empty")
	}
	if !cfg.AllowCancelTerminal {
		t.Error("AllowCancelTerminal default = false, want true")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ALLOW_CANCEL_TERMINAL", "false")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q, want from-env", cfg.JWTSecret)
	}
	if cfg.AllowCancelTerminal {
		t.Error("AllowCancelTerminal = true, want false")
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("Load accepted a non-numeric REDIS_DB")
	}

	t.Setenv("REDIS_DB", "0")
	t.Setenv("ALLOW_CANCEL_TERMINAL", "maybe")
	if _, err := Load(); err == nil {
		t.Error("Load accepted a non-boolean ALLOW_CANCEL_TERMINAL")
	}
}
