// Package sessions tracks per-browser profile edit sessions.
package sessions

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/profile.space/internal/profile/form"
	"github.com/louisbranch/profile.space/internal/services/web/platform/requestmeta"
)

// CookieName is the canonical edit-session cookie name.
const CookieName = "ps_session"

// DefaultTTL bounds how long an idle edit session survives.
const DefaultTTL = 30 * time.Minute

type record struct {
	session   *form.Session
	expiresAt time.Time
}

// Registry is a thread-safe in-memory edit-session store. Sessions expire on
// idle TTL; reading an expired id drops it so the caller recreates the session
// from the stored profile.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*record
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL overrides the idle session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) { r.ttl = ttl }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty session registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*record),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Create stores a new edit session and returns its id.
func (r *Registry) Create(session *form.Session) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &record{session: session, expiresAt: r.now().Add(r.ttl)}
	r.mu.Unlock()
	return id
}

// Get returns an edit session by id, refreshing its idle deadline.
func (r *Registry) Get(id string) (*form.Session, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.now().After(rec.expiresAt) {
		delete(r.sessions, id)
		return nil, false
	}
	rec.expiresAt = r.now().Add(r.ttl)
	return rec.session, true
}

// Delete removes an edit session by id.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports how many sessions are registered, expired ones included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// ReadCookie returns the trimmed session cookie value when present.
func ReadCookie(req *http.Request) (string, bool) {
	if req == nil {
		return "", false
	}
	cookie, err := req.Cookie(CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// WriteCookie sets the session cookie for the current request context.
func WriteCookie(w http.ResponseWriter, req *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(req),
		SameSite: http.SameSiteLaxMode,
	})
}
