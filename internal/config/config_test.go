package config_test

import (
	"testing"
	"time"

	"emperor/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port: got %d, want 8080", cfg.Port)
	}
	if cfg.Seats != 6 {
		t.Errorf("seats: got %d, want 6", cfg.Seats)
	}
	if cfg.BotDelay != 750*time.Millisecond {
		t.Errorf("bot delay: got %v, want 750ms", cfg.BotDelay)
	}
	if cfg.Debug {
		t.Error("debug must default to off")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EMPEROR_PORT", "9001")
	t.Setenv("EMPEROR_SEATS", "4")
	t.Setenv("EMPEROR_BOT_DELAY", "2s")
	t.Setenv("EMPEROR_DEBUG", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9001 || cfg.Seats != 4 || cfg.BotDelay != 2*time.Second || !cfg.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadSeatCount(t *testing.T) {
	for _, v := range []string{"3", "10"} {
		t.Setenv("EMPEROR_SEATS", v)
		if _, err := config.Load(); err == nil {
			t.Errorf("seat count %s must be rejected", v)
		}
	}
}
