package profile

import (
	"context"
	"fmt"
	"log"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
)

// Saver persists a validated profile update.
type Saver interface {
	SaveProfile(ctx context.Context, fields FormFields) error
}

// Submitter re-validates and saves submitted profile form data.
type Submitter interface {
	Submit(ctx context.Context, prev FormState, fields FormFields, locale i18n.Locale) FormState
}

// SubmitHandler is the server-side submission path. It never trusts client
// validation: every submission re-runs the submission schema for the locale
// before the save side effect.
type SubmitHandler struct {
	saver      Saver
	invalidate func(i18n.Locale)
}

// NewSubmitHandler builds a submit handler. invalidate drops cached page
// renders for the submitting locale after a successful save; it may be nil.
func NewSubmitHandler(saver Saver, invalidate func(i18n.Locale)) *SubmitHandler {
	return &SubmitHandler{saver: saver, invalidate: invalidate}
}

// Submit validates and saves one submission attempt.
//
// The returned FormState is always a complete replacement for prev; no prior
// errors or messages are merged in. Unexpected save failures, including
// panics, are downgraded to a `server` field error rather than propagated.
// The handler keeps no memory of prior submissions: identical valid inputs
// each produce an independent success.
func (h *SubmitHandler) Submit(ctx context.Context, prev FormState, fields FormFields, locale i18n.Locale) (state FormState) {
	_ = prev
	dictionary := i18n.DictionaryFor(locale)

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("profile submit panic locale=%s panic=%v", locale, recovered)
			state = serverFailure(dictionary)
		}
	}()

	result := NewSchemas(locale).Submission.Validate(Values{
		Name:  fields.Name,
		Email: fields.Email,
		Bio:   fields.Bio,
	})
	if !result.OK {
		return FormState{
			Errors:  result.Errors,
			Success: false,
			Message: dictionary.Notifications.Error,
		}
	}

	if err := h.save(ctx, fields); err != nil {
		log.Printf("profile submit save locale=%s err=%v", locale, err)
		return serverFailure(dictionary)
	}

	if h.invalidate != nil {
		h.invalidate(locale)
	}
	return FormState{
		Success: true,
		Message: dictionary.Notifications.Success,
	}
}

func (h *SubmitHandler) save(ctx context.Context, fields FormFields) error {
	if h.saver == nil {
		return fmt.Errorf("no profile saver configured")
	}
	return h.saver.SaveProfile(ctx, fields)
}

func serverFailure(dictionary i18n.Dictionary) FormState {
	return FormState{
		Errors:  FieldErrors{FieldServer: {dictionary.Validation.ServerRetry}},
		Success: false,
		Message: dictionary.Notifications.Error,
	}
}
