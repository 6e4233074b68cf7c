package folio

import (
	"sync"

	"github.com/eringen/folio/contact"
)

// formSet keeps one mounted contact form per client, so a second POST while
// the first is still in its delay sees the form Submitting.
type formSet struct {
	mu    sync.Mutex
	forms map[string]*contact.Form
}

func newFormSet() *formSet {
	return &formSet{forms: make(map[string]*contact.Form)}
}

// acquire returns the client's form, mounting a new one with mk if none exists.
func (s *formSet) acquire(key string, mk func() *contact.Form) *contact.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.forms[key]; ok {
		return f
	}
	f := mk()
	s.forms[key] = f
	return f
}

// release drops f once it is Idle again.
func (s *formSet) release(key string, f *contact.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forms[key] == f && !f.Disabled() {
		delete(s.forms, key)
	}
}

// unmount stops f and forgets it.
func (s *formSet) unmount(key string, f *contact.Form) {
	f.Unmount()
	s.mu.Lock()
	if s.forms[key] == f {
		delete(s.forms, key)
	}
	s.mu.Unlock()
}

func (s *formSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}
