// Package form owns the client-side edit session for the profile form: the
// working copy, touched-field tracking, immediate validation, avatar preview
// handling, and submission orchestration.
package form

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile"
)

// State identifies where a session is in its edit/submit cycle.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateValid
	StateInvalid
	StateSubmitting
	StateSucceeded
	StateFailed
)

// String returns a stable state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Notifier surfaces submission and avatar outcomes to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

// editableFields are the working-copy fields a user can change.
var editableFields = []string{
	profile.FieldName,
	profile.FieldEmail,
	profile.FieldBio,
	profile.FieldAvatar,
}

// workingCopy is the editable draft: the profile minus its immutable id.
type workingCopy struct {
	Name   string
	Email  string
	Bio    string
	Avatar string
}

// DefaultResetDelay clears a success state after this long.
const DefaultResetDelay = 5 * time.Second

// Config assembles a session.
type Config struct {
	Initial   profile.UserProfile
	Locale    i18n.Locale
	Submitter profile.Submitter
	Notifier  Notifier

	// ResetDelay schedules an automatic FormState clear after a successful
	// submission. Zero disables the auto-clear.
	ResetDelay time.Duration

	// After is the timer seam used to schedule the auto-clear.
	// Defaults to time.AfterFunc.
	After func(time.Duration, func())
}

// Session is one user's ephemeral profile editing session. It lives for the
// duration of a page visit and is never persisted.
type Session struct {
	mu sync.Mutex

	initial    profile.UserProfile
	locale     i18n.Locale
	dictionary i18n.Dictionary
	client     profile.Schema
	submitter  profile.Submitter
	notifier   Notifier
	resetDelay time.Duration
	after      func(time.Duration, func())

	state         State
	working       workingCopy
	touched       map[string]bool
	clientErrors  profile.FieldErrors
	lastValidated *workingCopy
	formState     profile.FormState

	previewImage string
	selectedFile string
	pending      bool
}

// NewSession mounts a session from the initially loaded profile.
func NewSession(cfg Config) *Session {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}
	after := cfg.After
	if after == nil {
		after = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	return &Session{
		initial:    cfg.Initial,
		locale:     cfg.Locale,
		dictionary: i18n.DictionaryFor(cfg.Locale),
		client:     profile.NewSchemas(cfg.Locale).Client,
		submitter:  cfg.Submitter,
		notifier:   notifier,
		resetDelay: cfg.ResetDelay,
		after:      after,
		state:      StateIdle,
		working: workingCopy{
			Name:   cfg.Initial.Name,
			Email:  cfg.Initial.Email,
			Bio:    cfg.Initial.Bio,
			Avatar: cfg.Initial.Avatar,
		},
		touched:      map[string]bool{},
		clientErrors: profile.FieldErrors{},
		previewImage: cfg.Initial.Avatar,
	}
}

// SetField overwrites one working-copy field and marks it touched. A value
// equal to the current working copy is not an interaction and leaves the
// touched set alone; the whole form posts back on any change, so only the
// field the user actually edited may gain touched state here. The touched
// set only grows for the lifetime of the session.
func (s *Session) SetField(field string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.setWorkingField(field, value) {
		return
	}
	s.touched[field] = true
	s.state = StateEditing
	s.validateLocked()
}

// Blur marks a field touched without changing its value.
func (s *Session) Blur(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !isEditable(field) {
		return
	}
	s.touched[field] = true
	if s.state == StateIdle {
		s.state = StateEditing
	}
	s.validateLocked()
}

// Submit runs one submission attempt.
//
// All fields are marked touched so untouched invalid fields surface their
// errors. A client-schema failure rejects locally without calling the
// submitter. While a submission is pending, further Submit calls are no-ops
// returning the current state; at most one submission is in flight per
// session.
func (s *Session) Submit(ctx context.Context) profile.FormState {
	s.mu.Lock()
	if s.pending {
		current := s.formState
		s.mu.Unlock()
		return current
	}

	for _, field := range editableFields {
		s.touched[field] = true
	}
	s.lastValidated = nil
	s.validateLocked()
	if s.state == StateInvalid {
		current := s.formState
		s.mu.Unlock()
		return current
	}

	s.pending = true
	s.state = StateSubmitting
	prev := s.formState
	fields := profile.FormFields{
		Name:  s.working.Name,
		Email: s.working.Email,
		Bio:   s.working.Bio,
	}
	s.mu.Unlock()

	result := s.submitter.Submit(ctx, prev, fields, s.locale)

	s.mu.Lock()
	s.pending = false
	s.formState = result
	if result.Success {
		s.state = StateSucceeded
		s.notifier.Success(result.Message)
		if s.resetDelay > 0 {
			s.after(s.resetDelay, s.clearSuccess)
		}
	} else {
		s.state = StateFailed
		s.notifier.Error(result.Message)
	}
	s.mu.Unlock()
	return result
}

// clearSuccess drops a lingering success state once the reset delay expires.
func (s *Session) clearSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSucceeded {
		return
	}
	s.formState = profile.FormState{}
	s.state = StateEditing
}

// validateLocked runs the client schema over the whole working copy.
//
// When the working copy is unchanged since the last pass the recomputation is
// skipped outright; skipping must not change observable error state.
func (s *Session) validateLocked() {
	if len(s.touched) == 0 {
		return
	}
	if s.lastValidated != nil && *s.lastValidated == s.working {
		return
	}
	snapshot := s.working
	s.lastValidated = &snapshot

	result := s.client.Validate(profile.Values{
		Name:  s.working.Name,
		Email: s.working.Email,
		Bio:   s.working.Bio,
	})
	s.clientErrors = result.Errors
	if result.OK {
		s.state = StateValid
	} else {
		s.state = StateInvalid
	}
}

// DisplayErrors returns the messages to render for a field. A present client
// error on a touched field wins over the server error for the same field:
// client errors reflect the freshest input.
func (s *Session) DisplayErrors(field string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touched[field] && s.clientErrors.Has(field) {
		return append([]string{}, s.clientErrors[field]...)
	}
	return append([]string{}, s.formState.Errors[field]...)
}

// FormState returns the result of the most recent submission attempt.
func (s *Session) FormState() profile.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formState
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending reports whether a submission is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Touched reports whether a field was interacted with this session.
func (s *Session) Touched(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched[field]
}

// ClientErrors returns a copy of the current client-side error map.
func (s *Session) ClientErrors() profile.FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := profile.FieldErrors{}
	for field, messages := range s.clientErrors {
		out[field] = append([]string{}, messages...)
	}
	return out
}

// Field returns the current working-copy value for a field.
func (s *Session) Field(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case profile.FieldName:
		return s.working.Name
	case profile.FieldEmail:
		return s.working.Email
	case profile.FieldBio:
		return s.working.Bio
	case profile.FieldAvatar:
		return s.working.Avatar
	default:
		return ""
	}
}

// Locale returns the session locale.
func (s *Session) Locale() i18n.Locale {
	return s.locale
}

// Initial returns the profile the session was mounted from.
func (s *Session) Initial() profile.UserProfile {
	return s.initial
}

func (s *Session) setWorkingField(field string, value string) bool {
	switch field {
	case profile.FieldName:
		if s.working.Name == value {
			return false
		}
		s.working.Name = value
	case profile.FieldEmail:
		if s.working.Email == value {
			return false
		}
		s.working.Email = value
	case profile.FieldBio:
		if s.working.Bio == value {
			return false
		}
		s.working.Bio = value
	case profile.FieldAvatar:
		if s.working.Avatar == value {
			return false
		}
		s.working.Avatar = value
	default:
		return false
	}
	return true
}

func isEditable(field string) bool {
	for _, candidate := range editableFields {
		if candidate == field {
			return true
		}
	}
	return false
}
