package folio

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eringen/folio/contact"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"SITE_NAME", "SITE_URL", "ADDR", "CONTACT_SUBMIT_DELAY", "CONTACT_INBOX_PATH", "LOG_LEVEL", "METRICS_ENABLED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, contact.DefaultDelay, cfg.SubmitDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.InboxEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Ada")
	t.Setenv("SITE_URL", "https://ada.example")
	t.Setenv("ADDR", ":8080")
	t.Setenv("CONTACT_SUBMIT_DELAY", "250ms")
	t.Setenv("CONTACT_INBOX_PATH", "data/inbox.db")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Name)
	assert.Equal(t, "https://ada.example", cfg.URL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitDelay)
	assert.True(t, cfg.InboxEnabled())
	assert.True(t, cfg.CookieSecure)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("CONTACT_SUBMIT_DELAY", "soon")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "folio: parse env")
}

func TestConfigValidateInbox(t *testing.T) {
	cfg := SiteConfig{InboxPath: "x.db", AdminPassword: "pw"}
	assert.ErrorContains(t, cfg.validate(), "ADMIN_SESSION_SECRET")

	cfg.SessionSecret = "secret"
	assert.NoError(t, cfg.validate())

	assert.NoError(t, SiteConfig{}.validate(), "simulated mode needs no credentials")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud")
	assert.Error(t, err)

	l, err := NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", nil, "https://example.com/"},
		{"https://example.com/base", []string{"feed"}, "https://example.com/base/feed/"},
		{"http://localhost:3000", []string{"a", "b"}, "http://localhost:3000/a/b/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestProjectLink(t *testing.T) {
	base := "https://example.com"
	assert.Equal(t, "https://example.com/#project-card-1", projectLink(base, "", "project-card-1"))
	assert.Equal(t, "https://example.com/#project-card-1", projectLink(base, "#", "project-card-1"))
	assert.Equal(t, "https://example.com/#projects", projectLink(base, "#projects", "project-card-1"))
	assert.Equal(t, "https://github.com/x", projectLink(base, "https://github.com/x", "project-card-1"))
}
