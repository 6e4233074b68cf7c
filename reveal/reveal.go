// Package reveal models scroll-triggered reveal animations.
//
// A Controller watches elements through a Source and flips each one from
// Hidden to Revealed the first time enough of it is visible. The transition
// is one-way: once revealed an element is never watched again.
package reveal

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// DefaultThreshold is the visible-area fraction that triggers a reveal.
const DefaultThreshold = 0.1

// StaggerStep is the per-index delay applied to items in a list.
const StaggerStep = 100 * time.Millisecond

// State is the visual state of a watched element.
type State int

const (
	Hidden State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Variant selects how an element enters.
type Variant int

const (
	Fade Variant = iota
	SlideUp
	SlideFromLeft
	SlideFromRight
)

// Options configures how visibility is measured.
type Options struct {
	// Threshold is the fraction of the element area that must be visible.
	Threshold float64
	// BottomMargin shrinks the viewport bottom edge by this many pixels,
	// so elements fire a little after they enter.
	BottomMargin float64
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	return o
}

// RootMargin renders the margin the way an IntersectionObserver expects it.
func (o Options) RootMargin() string {
	if o.BottomMargin == 0 {
		return "0px 0px 0px 0px"
	}
	return fmt.Sprintf("0px 0px -%spx 0px", strconv.FormatFloat(o.BottomMargin, 'f', -1, 64))
}

// StaggerDelay returns the transition delay of the item at index i.
func StaggerDelay(i int) time.Duration {
	if i < 0 {
		return 0
	}
	return time.Duration(i) * StaggerStep
}

// Entry is one visibility report for a watched element.
type Entry struct {
	ID    string
	Ratio float64
}

// Source delivers visibility reports. Observe must return a stop function
// that ends delivery for that registration; calling it twice is harmless.
type Source interface {
	Observe(id string, opts Options, fn func(Entry)) (stop func())
}

// Element is a revealable piece of the page.
type Element struct {
	ID      string
	Variant Variant
	// Index is the position in a staggered list. Stagger must be set for it
	// to produce a delay.
	Index   int
	Stagger bool
	State   State
}

// Delay is the transition delay applied when the element reveals.
func (e *Element) Delay() time.Duration {
	if !e.Stagger {
		return 0
	}
	return StaggerDelay(e.Index)
}

// Revealed reports whether the element has reached its terminal state.
func (e *Element) Revealed() bool { return e.State == Revealed }

// watch is one outstanding observation.
type watch struct {
	el   *Element
	stop func()
}

// Controller reveals elements as they become visible.
type Controller struct {
	src  Source
	opts Options

	// OnReveal, if set, is called once per element after it reveals.
	OnReveal func(*Element)

	mu      sync.Mutex
	watches map[string]*watch
	closed  bool
}

// NewController returns a Controller that observes through src.
func NewController(src Source, opts Options) *Controller {
	return &Controller{
		src:     src,
		opts:    opts.withDefaults(),
		watches: make(map[string]*watch),
	}
}

// Options returns the effective options, with defaults applied.
func (c *Controller) Options() Options { return c.opts }

// Watch starts observing el. A nil element, or one that is already
// revealed or watched, is ignored.
func (c *Controller) Watch(el *Element) {
	if el == nil || c.src == nil {
		return
	}
	c.mu.Lock()
	if c.closed || el.State == Revealed {
		c.mu.Unlock()
		return
	}
	if _, ok := c.watches[el.ID]; ok {
		c.mu.Unlock()
		return
	}
	w := &watch{el: el}
	c.watches[el.ID] = w
	c.mu.Unlock()

	stop := c.src.Observe(el.ID, c.opts, func(e Entry) { c.handle(w, e) })

	c.mu.Lock()
	// The source may have fired synchronously and the watch may already be gone.
	if cur, ok := c.watches[el.ID]; ok && cur == w && !c.closed {
		w.stop = stop
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	stop()
}

// WatchAll watches each element in order.
func (c *Controller) WatchAll(els []*Element) {
	for _, el := range els {
		c.Watch(el)
	}
}

func (c *Controller) handle(w *watch, e Entry) {
	if e.Ratio <= 0 || e.Ratio < c.opts.Threshold {
		return
	}
	c.mu.Lock()
	if c.closed || c.watches[w.el.ID] != w {
		c.mu.Unlock()
		return
	}
	delete(c.watches, w.el.ID)
	w.el.State = Revealed
	stop := w.stop
	onReveal := c.OnReveal
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	if onReveal != nil {
		onReveal(w.el)
	}
}

// Pending returns the number of elements still being watched.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.watches)
}

// Close stops every outstanding watch. Reports that arrive afterwards are
// ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	stops := make([]func(), 0, len(c.watches))
	for id, w := range c.watches {
		if w.stop != nil {
			stops = append(stops, w.stop)
		}
		delete(c.watches, id)
	}
	c.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}
