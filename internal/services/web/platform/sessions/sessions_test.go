package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile"
	"github.com/louisbranch/profile.space/internal/profile/form"
)

func newEditSession(t *testing.T) *form.Session {
	t.Helper()
	return form.NewSession(form.Config{
		Initial: profile.UserProfile{ID: "user-123", Name: "John Doe", Email: "john@example.com"},
		Locale:  i18n.LocaleEN,
	})
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	session := newEditSession(t)

	id := registry.Create(session)
	if id == "" {
		t.Fatal("empty session id")
	}

	got, ok := registry.Get(id)
	if !ok {
		t.Fatal("session not found")
	}
	if got != session {
		t.Fatal("wrong session returned")
	}
}

func TestGetUnknownOrBlankID(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	if _, ok := registry.Get("missing"); ok {
		t.Fatal("unknown id resolved")
	}
	if _, ok := registry.Get("  "); ok {
		t.Fatal("blank id resolved")
	}
}

func TestExpiredSessionIsDropped(t *testing.T) {
	t.Parallel()

	current := time.Unix(1000, 0)
	registry := NewRegistry(WithTTL(time.Minute), WithClock(func() time.Time { return current }))

	id := registry.Create(newEditSession(t))
	current = current.Add(2 * time.Minute)

	if _, ok := registry.Get(id); ok {
		t.Fatal("expired session resolved")
	}
	if registry.Len() != 0 {
		t.Fatalf("expired session retained, len = %d", registry.Len())
	}
}

func TestGetRefreshesIdleDeadline(t *testing.T) {
	t.Parallel()

	current := time.Unix(1000, 0)
	registry := NewRegistry(WithTTL(time.Minute), WithClock(func() time.Time { return current }))

	id := registry.Create(newEditSession(t))
	current = current.Add(45 * time.Second)
	if _, ok := registry.Get(id); !ok {
		t.Fatal("live session dropped")
	}
	current = current.Add(45 * time.Second)
	if _, ok := registry.Get(id); !ok {
		t.Fatal("refreshed session expired early")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteCookie(rec, httptest.NewRequest(http.MethodGet, "/en/", nil), "session-id")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/en/", nil)
	req.AddCookie(cookies[0])
	value, ok := ReadCookie(req)
	if !ok || value != "session-id" {
		t.Fatalf("read = %q ok=%v", value, ok)
	}
}

func TestReadCookieMissing(t *testing.T) {
	t.Parallel()

	if _, ok := ReadCookie(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("cookie read from bare request")
	}
	if _, ok := ReadCookie(nil); ok {
		t.Fatal("cookie read from nil request")
	}
}
