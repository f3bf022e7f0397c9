package rest

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{ServerURL: "https://chat.example.com"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", cfg.Timeout)
	}
	if cfg.LargeFileTimeout != 90*time.Second {
		t.Errorf("expected 90s default large file timeout, got %v", cfg.LargeFileTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{ServerURL: "https://chat.example.com"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := Config{}
	missing.ApplyDefaults()
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing server url")
	}

	malformed := Config{ServerURL: "chat example"}
	malformed.ApplyDefaults()
	if err := malformed.Validate(); err == nil {
		t.Error("expected error for malformed server url")
	}
}
