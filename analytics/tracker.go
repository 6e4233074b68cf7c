package analytics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrUnknownSection is returned by Reveal for an id that is not tracked.
var ErrUnknownSection = errors.New("analytics: unknown section")

// Tracker owns the visitor counters.
type Tracker struct {
	views    *prometheus.CounterVec
	bots     *prometheus.CounterVec
	reveals  *prometheus.CounterVec
	sections map[string]bool
}

// NewTracker registers the counters on reg. Only the given section ids
// are accepted by Reveal, which keeps the label set bounded.
func NewTracker(reg prometheus.Registerer, sections []string) *Tracker {
	t := &Tracker{
		views: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "page_views_total",
			Help:      "Home page views by people, by device, browser and referrer source.",
		}, []string{"device", "browser", "source"}),
		bots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "bot_hits_total",
			Help:      "Home page requests from crawlers, by bot name.",
		}, []string{"bot"}),
		reveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "section_reveals_total",
			Help:      "First reveals of a page section reported by browsers.",
		}, []string{"section"}),
		sections: make(map[string]bool, len(sections)),
	}
	for _, id := range sections {
		t.sections[id] = true
		t.reveals.WithLabelValues(id)
	}
	reg.MustRegister(t.views, t.bots, t.reveals)
	return t
}

// PageView counts one request for the page.
func (t *Tracker) PageView(ua, referrer, host string) Agent {
	a := ParseAgent(ua)
	if a.IsBot() {
		t.bots.WithLabelValues(a.Bot).Inc()
		return a
	}
	t.views.WithLabelValues(a.Device, a.Browser, Source(referrer, host)).Inc()
	return a
}

// Reveal counts a section becoming visible. Reports from crawlers are
// accepted and dropped.
func (t *Tracker) Reveal(section, ua string) error {
	if !t.sections[section] {
		return ErrUnknownSection
	}
	if IsBot(ua) {
		return nil
	}
	t.reveals.WithLabelValues(section).Inc()
	return nil
}

