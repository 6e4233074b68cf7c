// Package contact implements the contact form: a draft, its validation and
// the Idle/Submitting cycle around a (by default simulated) delivery.
package contact

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDelay is the simulated submission latency.
const DefaultDelay = 1500 * time.Millisecond

var (
	// ErrSubmitting is returned by Submit while a submission is in flight.
	ErrSubmitting = errors.New("contact: submission in progress")
	// ErrUnmounted is returned by Submit after Unmount.
	ErrUnmounted = errors.New("contact: form unmounted")
)

// State is the form's submission state.
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Outcome is how a submission ended.
type Outcome int

const (
	Submitted Outcome = iota
	SubmissionFailed
)

func (o Outcome) String() string {
	if o == SubmissionFailed {
		return "failed"
	}
	return "submitted"
}

// Result is delivered once per completed submission.
type Result struct {
	Outcome      Outcome
	Notification Notification
	Err          error
}

// Sender delivers a validated draft. A nil Sender simulates delivery and
// never fails.
type Sender interface {
	Send(ctx context.Context, d Draft) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, d Draft) error

func (f SenderFunc) Send(ctx context.Context, d Draft) error { return f(ctx, d) }

// Scheduler runs f after d. The returned stop reports whether it prevented f
// from running, like (*time.Timer).Stop.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Form.
type Option func(*Form)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(f *Form) {
		if d >= 0 {
			f.delay = d
		}
	}
}

// WithSender sets the delivery backend.
func WithSender(s Sender) Option {
	return func(f *Form) { f.sender = s }
}

// WithNotifier sets where completion notifications go.
func WithNotifier(n Notifier) Option {
	return func(f *Form) { f.notifier = n }
}

// WithScheduler replaces the timer used for the delay.
func WithScheduler(s Scheduler) Option {
	return func(f *Form) {
		if s != nil {
			f.sched = s
		}
	}
}

// Form is one mounted contact form.
type Form struct {
	delay    time.Duration
	sender   Sender
	notifier Notifier
	sched    Scheduler

	mu        sync.Mutex
	state     State
	draft     Draft
	stop      func() bool
	pending   chan Result
	unmounted bool
}

// NewForm returns an Idle form with empty fields.
func NewForm(opts ...Option) *Form {
	f := &Form{
		delay: DefaultDelay,
		sched: timerScheduler{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set replaces the field values.
func (f *Form) Set(d Draft) {
	f.mu.Lock()
	f.draft = d
	f.mu.Unlock()
}

// Draft returns the current field values.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// State returns the submission state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Disabled reports whether the submit control is disabled.
func (f *Form) Disabled() bool { return f.State() == Submitting }

// SubmitLabel is the submit control's text for the current state.
func (f *Form) SubmitLabel() string { return Label(f.State()) }

// Label returns the submit control's text for s.
func Label(s State) string {
	if s == Submitting {
		return "Enviando..."
	}
	return "Enviar"
}

// Submit validates the fields and starts a submission. The form is
// Submitting when Submit returns; after the delay the draft is delivered,
// the form returns to Idle, one notification is emitted and a Result is
// sent on the returned channel. If the form is unmounted first the channel
// is closed without a value.
func (f *Form) Submit(ctx context.Context) (<-chan Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.unmounted {
		return nil, ErrUnmounted
	}
	if f.state == Submitting {
		return nil, ErrSubmitting
	}
	if err := Validate(f.draft); err != nil {
		return nil, err
	}

	f.state = Submitting
	done := make(chan Result, 1)
	f.pending = done
	snapshot := f.draft
	f.stop = f.sched.AfterFunc(f.delay, func() { f.complete(ctx, snapshot, done) })
	return done, nil
}

func (f *Form) complete(ctx context.Context, d Draft, done chan Result) {
	f.mu.Lock()
	if f.unmounted || f.pending != done {
		f.mu.Unlock()
		close(done)
		return
	}
	sender := f.sender
	f.mu.Unlock()

	var err error
	if sender != nil {
		err = sender.Send(ctx, d)
	}

	f.mu.Lock()
	if f.unmounted {
		f.mu.Unlock()
		close(done)
		return
	}
	res := Result{Outcome: Submitted, Notification: SuccessNotification}
	if err != nil {
		res = Result{Outcome: SubmissionFailed, Notification: FailureNotification, Err: err}
	} else {
		f.draft = Draft{}
	}
	f.state = Idle
	f.stop = nil
	f.pending = nil
	notifier := f.notifier
	f.mu.Unlock()

	if notifier != nil {
		notifier.Notify(res.Notification)
	}
	done <- res
	close(done)
}

// Unmount stops a pending submission and prevents any further state change
// or notification. It is safe to call more than once.
func (f *Form) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unmounted {
		return
	}
	f.unmounted = true
	if f.stop != nil && f.stop() && f.pending != nil {
		close(f.pending)
	}
	f.stop = nil
	f.pending = nil
}
