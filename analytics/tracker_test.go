package analytics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(prometheus.NewRegistry(), []string{"about", "contact"})
}

func TestPageViewCountsPeopleAndBots(t *testing.T) {
	tr := newTestTracker(t)

	tr.PageView(chromeDesktop, "https://www.google.com/", "folio.example")
	tr.PageView(chromeDesktop, "https://google.com/", "folio.example")
	tr.PageView(safariIPhone, "", "folio.example")
	a := tr.PageView(googlebot, "", "folio.example")

	if a.Bot != "Googlebot" {
		t.Errorf("PageView returned %+v, want the Googlebot agent", a)
	}
	if got := testutil.ToFloat64(tr.views.WithLabelValues("Desktop", "Chrome", "Google")); got != 2 {
		t.Errorf("desktop chrome google views = %v, want 2", got)
	}
	if got := testutil.ToFloat64(tr.views.WithLabelValues("Mobile", "Safari", "Direct")); got != 1 {
		t.Errorf("mobile safari direct views = %v, want 1", got)
	}
	if got := testutil.ToFloat64(tr.bots.WithLabelValues("Googlebot")); got != 1 {
		t.Errorf("googlebot hits = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(tr.views); got != 2 {
		t.Errorf("view series = %d, want 2", got)
	}
}

func TestRevealAcceptsOnlyKnownSections(t *testing.T) {
	tr := newTestTracker(t)

	if err := tr.Reveal("about", chromeDesktop); err != nil {
		t.Fatalf("Reveal(about) = %v", err)
	}
	if err := tr.Reveal("nope", chromeDesktop); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("Reveal(nope) = %v, want ErrUnknownSection", err)
	}
	if err := tr.Reveal("about", googlebot); err != nil {
		t.Errorf("Reveal from a bot = %v, want nil", err)
	}

	if got := testutil.ToFloat64(tr.reveals.WithLabelValues("about")); got != 1 {
		t.Errorf("about reveals = %v, want 1", got)
	}
	if got := testutil.ToFloat64(tr.reveals.WithLabelValues("contact")); got != 0 {
		t.Errorf("contact reveals = %v, want 0", got)
	}
	// Known sections are exported at zero, unknown ones never appear.
	if got := testutil.CollectAndCount(tr.reveals); got != 2 {
		t.Errorf("reveal series = %d, want 2", got)
	}
}
