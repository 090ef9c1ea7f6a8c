// Package notify holds the single-slot toast notification store.
package notify

import (
	"strings"
	"sync"
	"time"
)

// Severity classifies toast presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultDismissDelay is how long an auto-dismiss toast stays visible.
const DefaultDismissDelay = 4 * time.Second

// Notification is one toast.
type Notification struct {
	ID          uint64
	Severity    Severity
	Message     string
	AutoDismiss bool
}

// Subscriber observes toast transitions. Shown is false for dismissals.
type Subscriber func(n Notification, shown bool)

// Store keeps at most one visible toast. Showing a new toast replaces the
// current one; a scheduled dismissal only clears the toast it was armed for.
type Store struct {
	mu      sync.Mutex
	current *Notification
	nextID  uint64
	delay   time.Duration
	after   func(time.Duration, func())
	subs    []Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithDismissDelay overrides the auto-dismiss delay.
func WithDismissDelay(delay time.Duration) Option {
	return func(s *Store) { s.delay = delay }
}

// WithAfter overrides the timer used for auto-dismissal.
func WithAfter(after func(time.Duration, func())) Option {
	return func(s *Store) { s.after = after }
}

// NewStore creates an empty toast store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		delay: DefaultDismissDelay,
		after: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Subscribe registers a transition observer.
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Show replaces the current toast and returns the shown notification.
func (s *Store) Show(severity Severity, message string, autoDismiss bool) Notification {
	message = strings.TrimSpace(message)
	s.mu.Lock()
	s.nextID++
	n := Notification{
		ID:          s.nextID,
		Severity:    severity,
		Message:     message,
		AutoDismiss: autoDismiss,
	}
	s.current = &n
	subs := append([]Subscriber(nil), s.subs...)
	after := s.after
	delay := s.delay
	s.mu.Unlock()

	for _, fn := range subs {
		fn(n, true)
	}
	if autoDismiss {
		after(delay, func() { s.DismissID(n.ID) })
	}
	return n
}

// Success shows a success toast with auto-dismissal.
func (s *Store) Success(message string) Notification {
	return s.Show(SeveritySuccess, message, true)
}

// Error shows an error toast that stays until dismissed.
func (s *Store) Error(message string) Notification {
	return s.Show(SeverityError, message, false)
}

// Dismiss clears the current toast regardless of id.
func (s *Store) Dismiss() {
	s.mu.Lock()
	n := s.current
	s.current = nil
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()
	if n == nil {
		return
	}
	for _, fn := range subs {
		fn(*n, false)
	}
}

// DismissID clears the toast only when it is still the one identified by id.
// A stale timer firing after a newer toast was shown is a no-op.
func (s *Store) DismissID(id uint64) {
	s.mu.Lock()
	if s.current == nil || s.current.ID != id {
		s.mu.Unlock()
		return
	}
	n := *s.current
	s.current = nil
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(n, false)
	}
}

// Current returns the visible toast when one is shown.
func (s *Store) Current() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
