package reveal

import "sync"

// Rect is an element box in document coordinates.
type Rect struct {
	Top, Left, Width, Height float64
}

func (r Rect) area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

type observer struct {
	id   string
	opts Options
	fn   func(Entry)
	last float64
	sent bool
}

// Viewport is an in-process Source. It tracks the window size, the vertical
// scroll offset and the layout of mounted elements, and reports a new ratio
// to each observer whenever its element's visible fraction changes.
type Viewport struct {
	mu        sync.Mutex
	width     float64
	height    float64
	scrollY   float64
	layout    map[string]Rect
	observers map[int]*observer
	next      int
}

// NewViewport returns a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:     width,
		height:    height,
		layout:    make(map[string]Rect),
		observers: make(map[int]*observer),
	}
}

// Observe registers fn for the element id. If the element is mounted an
// initial report is delivered before Observe returns.
func (v *Viewport) Observe(id string, opts Options, fn func(Entry)) func() {
	opts = opts.withDefaults()
	v.mu.Lock()
	key := v.next
	v.next++
	o := &observer{id: id, opts: opts, fn: fn}
	v.observers[key] = o
	pending := v.collectLocked(o)
	v.mu.Unlock()

	deliver(pending)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.observers, key)
			v.mu.Unlock()
		})
	}
}

// Mount places an element in the layout, or moves it.
func (v *Viewport) Mount(id string, r Rect) {
	v.mu.Lock()
	v.layout[id] = r
	pending := v.collectAllLocked()
	v.mu.Unlock()
	deliver(pending)
}

// Unmount removes an element from the layout. Observers of it stop
// receiving reports until it is mounted again.
func (v *Viewport) Unmount(id string) {
	v.mu.Lock()
	delete(v.layout, id)
	v.mu.Unlock()
}

// Scroll moves the viewport to vertical offset y.
func (v *Viewport) Scroll(y float64) {
	v.mu.Lock()
	v.scrollY = y
	pending := v.collectAllLocked()
	v.mu.Unlock()
	deliver(pending)
}

// ScrollY returns the current vertical offset.
func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollY
}

// Resize changes the window size.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	pending := v.collectAllLocked()
	v.mu.Unlock()
	deliver(pending)
}

// Ratio returns the visible fraction of a mounted element under opts.
func (v *Viewport) Ratio(id string, opts Options) (float64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.layout[id]
	if !ok {
		return 0, false
	}
	return v.ratioLocked(r, opts), true
}

func (v *Viewport) ratioLocked(r Rect, opts Options) float64 {
	full := r.area()
	if full == 0 {
		return 0
	}
	// Element box relative to the viewport; the root box is shrunk at the bottom.
	top := r.Top - v.scrollY
	bottom := top + r.Height
	rootBottom := v.height - opts.BottomMargin
	visH := min(bottom, rootBottom) - max(top, 0)
	visW := min(r.Left+r.Width, v.width) - max(r.Left, 0)
	if visH <= 0 || visW <= 0 {
		return 0
	}
	return (visH * visW) / full
}

type report struct {
	fn func(Entry)
	e  Entry
}

func (v *Viewport) collectLocked(o *observer) []report {
	r, ok := v.layout[o.id]
	if !ok {
		return nil
	}
	ratio := v.ratioLocked(r, o.opts)
	if o.sent && ratio == o.last {
		return nil
	}
	o.sent = true
	o.last = ratio
	return []report{{fn: o.fn, e: Entry{ID: o.id, Ratio: ratio}}}
}

func (v *Viewport) collectAllLocked() []report {
	var out []report
	for key := 0; key < v.next; key++ {
		o, ok := v.observers[key]
		if !ok {
			continue
		}
		out = append(out, v.collectLocked(o)...)
	}
	return out
}

// deliver runs callbacks outside the viewport lock so they may call back in.
func deliver(reports []report) {
	for _, r := range reports {
		r.fn(r.e)
	}
}
