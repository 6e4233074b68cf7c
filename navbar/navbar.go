// Package navbar tracks the navigation bar's scroll mode and the mobile
// overlay menu.
package navbar

import "sync"

// ScrollThreshold is the vertical offset, in pixels, past which the bar
// switches to its compact style.
const ScrollThreshold = 10

// ScrollSource delivers vertical scroll offsets.
type ScrollSource interface {
	Subscribe(fn func(offsetY float64)) (unsubscribe func())
}

// Scrolled reports whether offset y puts the bar in compact mode.
func Scrolled(y float64) bool { return y > ScrollThreshold }

// Tracker keeps the scrolled flag in sync with a ScrollSource and calls
// onChange only when the flag flips.
type Tracker struct {
	mu       sync.Mutex
	scrolled bool
	onChange func(bool)
	unsub    func()
}

// NewTracker subscribes to src. The flag starts false (top of page).
func NewTracker(src ScrollSource, onChange func(scrolled bool)) *Tracker {
	t := &Tracker{onChange: onChange}
	if src != nil {
		t.unsub = src.Subscribe(t.update)
	}
	return t
}

func (t *Tracker) update(y float64) {
	next := Scrolled(y)
	t.mu.Lock()
	if next == t.scrolled {
		t.mu.Unlock()
		return
	}
	t.scrolled = next
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn(next)
	}
}

// Scrolled returns the current flag.
func (t *Tracker) Scrolled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolled
}

// Close unsubscribes from the source.
func (t *Tracker) Close() {
	t.mu.Lock()
	unsub := t.unsub
	t.unsub = nil
	t.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// ScrollFeed is a ScrollSource fed by Publish. The zero value is ready to use.
type ScrollFeed struct {
	mu   sync.Mutex
	subs map[int]func(float64)
	next int
}

// Subscribe registers fn for future offsets.
func (f *ScrollFeed) Subscribe(fn func(float64)) func() {
	f.mu.Lock()
	if f.subs == nil {
		f.subs = make(map[int]func(float64))
	}
	key := f.next
	f.next++
	f.subs[key] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, key)
		f.mu.Unlock()
	}
}

// Publish sends offset y to every subscriber.
func (f *ScrollFeed) Publish(y float64) {
	f.mu.Lock()
	fns := make([]func(float64), 0, len(f.subs))
	for key := 0; key < f.next; key++ {
		if fn, ok := f.subs[key]; ok {
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(y)
	}
}

// BarStyle returns the header classes for the given mode: a compact
// translucent bar once scrolled, a taller transparent one at the top.
func BarStyle(scrolled bool) string {
	const base = "fixed top-0 left-0 right-0 z-50 px-6 transition-all duration-300 ease-in-out"
	if scrolled {
		return base + " py-4 glassmorphism dark:glassmorphism-dark"
	}
	return base + " py-6 bg-transparent"
}

// CompactClasses and TopClasses are the mode-specific halves of BarStyle,
// swapped by the browser script.
const (
	CompactClasses = "py-4 glassmorphism dark:glassmorphism-dark"
	TopClasses     = "py-6 bg-transparent"
)
