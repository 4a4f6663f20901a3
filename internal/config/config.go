package config

import (
	"os"
	"time"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port            string
	AnthropicAPIKey string
	AnthropicModel  string
	ResendAPIKey    string
	FromAddress     string
	InternalEmail   string
	LeadWebhookURL  string
	AbandonTimeout  time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:            getEnvOrDefault("PORT", "3001"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		FromAddress:     getEnvOrDefault("EMAIL_FROM", "UpLevel Automations <noreply@uplevelautomations.com>"),
		InternalEmail:   getEnvOrDefault("INTERNAL_EMAIL", "roy@uplevelautomations.com"),
		LeadWebhookURL:  os.Getenv("LEAD_WEBHOOK_URL"),
		AbandonTimeout:  getEnvAsDuration("ABANDON_TIMEOUT", 10*time.Minute),
	}
}

// ChatEnabled reports whether the chat-completion collaborator is configured.
func (c *Config) ChatEnabled() bool {
	return c.AnthropicAPIKey != ""
}

// EmailEnabled reports whether the email-delivery collaborator is configured.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}

// LoggingEnabled reports whether the lead webhook is configured.
func (c *Config) LoggingEnabled() bool {
	return c.LeadWebhookURL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
