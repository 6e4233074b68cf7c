package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrolledThreshold(t *testing.T) {
	assert.False(t, Scrolled(0))
	assert.False(t, Scrolled(10))
	assert.True(t, Scrolled(10.5))
	assert.True(t, Scrolled(11))
}

func TestTrackerReportsOnlyTransitions(t *testing.T) {
	var feed ScrollFeed
	var changes []bool
	tr := NewTracker(&feed, func(s bool) { changes = append(changes, s) })
	defer tr.Close()

	for _, y := range []float64{0, 5, 10, 10} {
		feed.Publish(y)
	}
	assert.Empty(t, changes)
	assert.False(t, tr.Scrolled())

	for _, y := range []float64{11, 200, 400, 11} {
		feed.Publish(y)
	}
	assert.Equal(t, []bool{true}, changes)
	assert.True(t, tr.Scrolled())

	feed.Publish(10)
	feed.Publish(3)
	assert.Equal(t, []bool{true, false}, changes)
	assert.False(t, tr.Scrolled())
}

func TestTrackerCloseUnsubscribes(t *testing.T) {
	var feed ScrollFeed
	calls := 0
	tr := NewTracker(&feed, func(bool) { calls++ })
	tr.Close()
	tr.Close()

	feed.Publish(500)
	assert.Zero(t, calls)
	assert.False(t, tr.Scrolled())
}

func TestTrackerWithoutSource(t *testing.T) {
	tr := NewTracker(nil, nil)
	require.NotPanics(t, tr.Close)
	assert.False(t, tr.Scrolled())
}

func TestBarStyle(t *testing.T) {
	assert.Contains(t, BarStyle(true), CompactClasses)
	assert.NotContains(t, BarStyle(true), TopClasses)
	assert.Contains(t, BarStyle(false), TopClasses)
}

func TestMenuToggle(t *testing.T) {
	var m Menu
	require.Equal(t, Closed, m.State())

	assert.Equal(t, Open, m.Toggle())
	assert.True(t, m.IsOpen())
	assert.Equal(t, OverlayOpenClasses, m.OverlayClasses())

	assert.Equal(t, Closed, m.Toggle())
	assert.False(t, m.IsOpen())
	assert.Equal(t, OverlayClosedClasses, m.OverlayClasses())
}

func TestMenuFollowClosesOverlay(t *testing.T) {
	var m Menu
	m.Toggle()
	href := m.Follow(Links[1])
	assert.Equal(t, "#projects", href)
	assert.Equal(t, Closed, m.State())

	// Following while closed stays closed.
	m.Follow(Links[0])
	assert.Equal(t, Closed, m.State())
}
