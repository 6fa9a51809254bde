package auth

import (
	"fmt"
	"time"

	"todo-list-backend/internal/config"
)

// SessionConfig holds the settings used to issue and read session tokens
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

// NewSessionConfig extracts the session settings from the application config
func NewSessionConfig(cfg *config.Config) *SessionConfig {
	return &SessionConfig{
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		CookieName:   cfg.SessionCookieName,
		CookieSecure: cfg.SessionCookieSecure,
	}
}

// Validate checks that tokens can be signed and cookies set
func (c *SessionConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}
