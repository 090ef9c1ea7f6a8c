package form

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

type submitterFunc func(ctx context.Context, prev profile.FormState, fields profile.FormFields, locale i18n.Locale) profile.FormState

func (f submitterFunc) Submit(ctx context.Context, prev profile.FormState, fields profile.FormFields, locale i18n.Locale) profile.FormState {
	return f(ctx, prev, fields, locale)
}

func testProfile() profile.UserProfile {
	return profile.UserProfile{
		ID:     "user-123",
		Name:   "John Doe",
		Email:  "john@example.com",
		Bio:    "Frontend developer.",
		Avatar: "/images/placeholder.jpg",
	}
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Initial.ID == "" {
		cfg.Initial = testProfile()
	}
	if cfg.Locale == "" {
		cfg.Locale = i18n.LocaleEN
	}
	if cfg.Submitter == nil {
		cfg.Submitter = submitterFunc(func(_ context.Context, _ profile.FormState, _ profile.FormFields, locale i18n.Locale) profile.FormState {
			return profile.FormState{Success: true, Message: i18n.DictionaryFor(locale).Notifications.Success}
		})
	}
	return NewSession(cfg)
}

func TestSetFieldMarksTouchedAndValidates(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, Config{})
	if session.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", session.State())
	}

	session.SetField(profile.FieldName, "J")
	if !session.Touched(profile.FieldName) {
		t.Fatal("expected name touched")
	}
	if session.State() != StateInvalid {
		t.Fatalf("state = %v, want invalid", session.State())
	}
	dictionary := i18n.DictionaryFor(i18n.LocaleEN)
	if got := session.DisplayErrors(profile.FieldName); len(got) == 0 || got[0] != dictionary.Validation.NameMinLength {
		t.Fatalf("display errors = %v, want min length message", got)
	}

	session.SetField(profile.FieldName, "Johnny")
	if session.State() != StateValid {
		t.Fatalf("state = %v, want valid", session.State())
	}
	if got := session.DisplayErrors(profile.FieldName); len(got) != 0 {
		t.Fatalf("display errors = %v, want none", got)
	}
}

func TestSetFieldUnchangedValueIsNotAnInteraction(t *testing.T) {
	t.Parallel()

	initial := testProfile()
	initial.Email = "bad-email"
	session := newTestSession(t, Config{Initial: initial})

	// The form posts every field back; only the edited one changed.
	session.SetField(profile.FieldName, "Johnny")
	session.SetField(profile.FieldEmail, "bad-email")
	session.SetField(profile.FieldBio, initial.Bio)

	if session.Touched(profile.FieldEmail) {
		t.Fatal("email was never edited")
	}
	if session.Touched(profile.FieldBio) {
		t.Fatal("bio was never edited")
	}
	if got := session.DisplayErrors(profile.FieldEmail); len(got) != 0 {
		t.Fatalf("display errors = %v, want none before email is touched", got)
	}

	// Blur is an interaction, so the stored invalid value surfaces now.
	session.Blur(profile.FieldEmail)
	dictionary := i18n.DictionaryFor(i18n.LocaleEN)
	if got := session.DisplayErrors(profile.FieldEmail); len(got) == 0 || got[0] != dictionary.Validation.EmailInvalid {
		t.Fatalf("display errors = %v, want invalid email message", got)
	}
}

func TestTouchedSetOnlyGrows(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, Config{})
	session.SetField(profile.FieldName, "Johnny")
	session.Blur(profile.FieldEmail)
	session.SetField(profile.FieldName, "Johnny B")

	for _, field := range []string{profile.FieldName, profile.FieldEmail} {
		if !session.Touched(field) {
			t.Fatalf("expected %s to stay touched", field)
		}
	}
	if session.Touched(profile.FieldBio) {
		t.Fatal("bio was never touched")
	}
}

func TestRedundantValidationIsIdempotent(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, Config{})
	session.SetField(profile.FieldEmail, "not-an-email")

	before := session.ClientErrors()
	touchedBefore := session.Touched(profile.FieldEmail)

	// Blur without a value change must not alter observable state.
	session.Blur(profile.FieldEmail)
	session.Blur(profile.FieldEmail)

	after := session.ClientErrors()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("client errors changed: %v -> %v", before, after)
	}
	if session.Touched(profile.FieldEmail) != touchedBefore {
		t.Fatal("touched set changed")
	}
}

func TestValidationRunsFullSchemaNotJustChangedField(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, Config{})
	session.SetField(profile.FieldEmail, "bad")
	session.SetField(profile.FieldName, "")

	// Email stays invalid even though the last change touched name.
	if got := session.DisplayErrors(profile.FieldEmail); len(got) == 0 {
		t.Fatal("expected email error to persist")
	}
	if got := session.DisplayErrors(profile.FieldName); len(got) == 0 {
		t.Fatal("expected name error")
	}
}

func TestSubmitInvalidRejectsLocally(t *testing.T) {
	t.Parallel()

	calls := 0
	session := newTestSession(t, Config{
		Submitter: submitterFunc(func(context.Context, profile.FormState, profile.FormFields, i18n.Locale) profile.FormState {
			calls++
			return profile.FormState{Success: true}
		}),
	})
	session.SetField(profile.FieldName, "J")

	session.Submit(context.Background())

	if calls != 0 {
		t.Fatalf("submitter called %d times, want 0", calls)
	}
	if session.State() != StateInvalid {
		t.Fatalf("state = %v, want invalid", session.State())
	}
}

func TestSubmitMarksAllFieldsTouched(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, Config{
		Initial: profile.UserProfile{ID: "user-123", Name: "John Doe", Email: "bad-email"},
	})

	// Email was never touched, so its error is hidden until submit.
	if got := session.DisplayErrors(profile.FieldEmail); len(got) != 0 {
		t.Fatalf("display errors before submit = %v, want none", got)
	}

	session.Submit(context.Background())

	if !session.Touched(profile.FieldEmail) {
		t.Fatal("expected email touched after submit")
	}
	if got := session.DisplayErrors(profile.FieldEmail); len(got) == 0 {
		t.Fatal("expected email error after submit")
	}
}

func TestSubmitSuccessNotifiesAndReplacesState(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	session := newTestSession(t, Config{Notifier: notifier})
	session.SetField(profile.FieldName, "Johnny")

	result := session.Submit(context.Background())

	if !result.Success {
		t.Fatalf("Submit() = %+v, want success", result)
	}
	if session.State() != StateSucceeded {
		t.Fatalf("state = %v, want succeeded", session.State())
	}
	if !reflect.DeepEqual(session.FormState(), result) {
		t.Fatalf("form state %+v != result %+v", session.FormState(), result)
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("success notifications = %v, want one", notifier.successes)
	}
}

func TestSubmitFailureNotifiesError(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	dictionary := i18n.DictionaryFor(i18n.LocaleEN)
	session := newTestSession(t, Config{
		Notifier: notifier,
		Submitter: submitterFunc(func(context.Context, profile.FormState, profile.FormFields, i18n.Locale) profile.FormState {
			return profile.FormState{
				Success: false,
				Errors:  profile.FieldErrors{profile.FieldServer: {dictionary.Validation.ServerRetry}},
				Message: dictionary.Notifications.Error,
			}
		}),
	})

	session.Submit(context.Background())

	if session.State() != StateFailed {
		t.Fatalf("state = %v, want failed", session.State())
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("error notifications = %v, want one", notifier.errors)
	}
	if got := session.DisplayErrors(profile.FieldServer); len(got) == 0 {
		t.Fatal("expected server error displayed")
	}
}

func TestSubmitWhilePendingIsNoOp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	session := newTestSession(t, Config{
		Submitter: submitterFunc(func(context.Context, profile.FormState, profile.FormFields, i18n.Locale) profile.FormState {
			mu.Lock()
			calls++
			mu.Unlock()
			close(entered)
			<-release
			return profile.FormState{Success: true}
		}),
	})

	done := make(chan struct{})
	go func() {
		session.Submit(context.Background())
		close(done)
	}()

	<-entered
	if !session.Pending() {
		t.Fatal("expected pending while submitter blocked")
	}
	session.Submit(context.Background()) // no-op while pending
	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("submitter called %d times, want 1", calls)
	}
	if session.Pending() {
		t.Fatal("pending should clear after resolution")
	}
}

func TestSuccessStateAutoClearsAfterResetDelay(t *testing.T) {
	t.Parallel()

	var scheduled func()
	var delay time.Duration
	session := newTestSession(t, Config{
		ResetDelay: DefaultResetDelay,
		After: func(d time.Duration, fn func()) {
			delay = d
			scheduled = fn
		},
	})

	session.Submit(context.Background())
	if scheduled == nil {
		t.Fatal("expected reset to be scheduled")
	}
	if delay != DefaultResetDelay {
		t.Fatalf("reset delay = %v, want %v", delay, DefaultResetDelay)
	}

	scheduled()

	if session.State() != StateEditing {
		t.Fatalf("state after reset = %v, want editing", session.State())
	}
	if !reflect.DeepEqual(session.FormState(), profile.FormState{}) {
		t.Fatalf("form state after reset = %+v, want empty", session.FormState())
	}
}

func TestClientErrorTakesPrecedenceOverServerError(t *testing.T) {
	t.Parallel()

	dictionary := i18n.DictionaryFor(i18n.LocaleEN)
	session := newTestSession(t, Config{
		Submitter: submitterFunc(func(context.Context, profile.FormState, profile.FormFields, i18n.Locale) profile.FormState {
			return profile.FormState{
				Success: false,
				Errors:  profile.FieldErrors{profile.FieldEmail: {"server says no"}},
				Message: dictionary.Notifications.Error,
			}
		}),
	})
	session.Submit(context.Background())

	// Server error shows while the client sees no fresher problem.
	if got := session.DisplayErrors(profile.FieldEmail); len(got) == 0 || got[0] != "server says no" {
		t.Fatalf("display errors = %v, want server message", got)
	}

	// A fresh client error on the same field wins.
	session.SetField(profile.FieldEmail, "still-bad")
	if got := session.DisplayErrors(profile.FieldEmail); len(got) == 0 || got[0] != dictionary.Validation.EmailInvalid {
		t.Fatalf("display errors = %v, want client message", got)
	}
}
