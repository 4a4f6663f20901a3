package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("LEAD_WEBHOOK_URL", "")
	t.Setenv("ABANDON_TIMEOUT", "")

	cfg := Load()

	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.AnthropicModel != "claude-sonnet-4-5-20250929" {
		t.Errorf("AnthropicModel = %q", cfg.AnthropicModel)
	}
	if cfg.FromAddress != "UpLevel Automations <noreply@uplevelautomations.com>" {
		t.Errorf("FromAddress = %q", cfg.FromAddress)
	}
	if cfg.InternalEmail != "roy@uplevelautomations.com" {
		t.Errorf("InternalEmail = %q", cfg.InternalEmail)
	}
	if cfg.AbandonTimeout != 10*time.Minute {
		t.Errorf("AbandonTimeout = %v, want 10m", cfg.AbandonTimeout)
	}
	if cfg.ChatEnabled() || cfg.EmailEnabled() || cfg.LoggingEnabled() {
		t.Error("collaborators should be disabled without keys")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_MODEL", "claude-test")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("LEAD_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("ABANDON_TIMEOUT", "30s")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AnthropicModel != "claude-test" {
		t.Errorf("AnthropicModel = %q", cfg.AnthropicModel)
	}
	if cfg.AbandonTimeout != 30*time.Second {
		t.Errorf("AbandonTimeout = %v, want 30s", cfg.AbandonTimeout)
	}
	if !cfg.ChatEnabled() || !cfg.EmailEnabled() || !cfg.LoggingEnabled() {
		t.Error("collaborators should be enabled")
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("ABANDON_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.AbandonTimeout != 10*time.Minute {
		t.Errorf("AbandonTimeout = %v, want default 10m", cfg.AbandonTimeout)
	}
}
