package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindInvalidInput, "bad input")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d", got)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not found status = %d", got)
	}
	if got := HTTPStatus(E(KindUnavailable, "down")); got != http.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d", got)
	}
	if got := HTTPStatus(E(KindUnknown, "boom")); got != http.StatusInternalServerError {
		t.Fatalf("unknown status = %d", got)
	}
}

func TestHTTPStatusNilAndUntyped(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("nil status = %d", got)
	}
	if got := HTTPStatus(errors.New("plain failure")); got != http.StatusInternalServerError {
		t.Fatalf("untyped status = %d", got)
	}
}

func TestHTTPStatusUnwrapsTypedError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("load profile: %w", E(KindNotFound, "missing"))
	if got := HTTPStatus(wrapped); got != http.StatusNotFound {
		t.Fatalf("wrapped status = %d", got)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindUnavailable}
	if err.Error() != string(KindUnavailable) {
		t.Fatalf("message = %q", err.Error())
	}
	withMessage := Error{Kind: KindUnavailable, Message: "backend offline"}
	if withMessage.Error() != "backend offline" {
		t.Fatalf("message = %q", withMessage.Error())
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " profile.validation.email.invalid ", "bad email")); got != "profile.validation.email.invalid" {
		t.Fatalf("key = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("untyped key = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("nil key = %q", got)
	}
}
