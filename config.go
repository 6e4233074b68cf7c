package folio

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/eringen/folio/contact"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`        // Site name (default "Portfolio")
	URL         string `env:"SITE_URL"`         // Canonical URL (default "http://localhost:3000")
	Description string `env:"SITE_DESCRIPTION"` // Meta and RSS description
	Author      string `env:"SITE_AUTHOR"`      // Author name for JSON-LD

	Addr string `env:"ADDR"` // Listen address (default ":3000")

	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY"` // Contact submission latency (default 1500ms)
	InboxPath   string        `env:"CONTACT_INBOX_PATH"`   // SQLite inbox; empty keeps submissions simulated

	AdminPassword string `env:"ADMIN_PASSWORD"`       // Required when the inbox is enabled
	SessionSecret string `env:"ADMIN_SESSION_SECRET"` // Required when the inbox is enabled
	CookieSecure  bool   `env:"COOKIE_SECURE"`        // Set true for HTTPS

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// LoadConfig reads SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("folio: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// InboxEnabled reports whether submissions are stored instead of simulated.
func (c SiteConfig) InboxEnabled() bool { return c.InboxPath != "" }

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SubmitDelay <= 0 {
		c.SubmitDelay = contact.DefaultDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) validate() error {
	if !c.InboxEnabled() {
		return nil
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("folio: ADMIN_PASSWORD is required when the inbox is enabled")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("folio: ADMIN_SESSION_SECRET is required when the inbox is enabled")
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the logger built from LogLevel.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithSender overrides where contact drafts are delivered. It takes
// precedence over the inbox.
func WithSender(s contact.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}

// WithScheduler sets the timer source for contact submissions.
func WithScheduler(s contact.Scheduler) Option {
	return func(a *App) {
		a.scheduler = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
