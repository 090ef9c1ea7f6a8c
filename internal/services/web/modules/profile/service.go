package profile

import (
	"fmt"
	"net/http"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile/form"
	weberrors "github.com/louisbranch/profile.space/internal/services/web/platform/errors"
	"github.com/louisbranch/profile.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/profile.space/internal/services/web/platform/notify"
	"github.com/louisbranch/profile.space/internal/services/web/platform/pagecache"
	"github.com/louisbranch/profile.space/internal/services/web/platform/sessions"

	profiledomain "github.com/louisbranch/profile.space/internal/profile"
)

type service struct {
	store    ProfileStore
	cache    *pagecache.Cache
	registry *sessions.Registry
	toasts   *notify.Store
	appName  string
}

// toastNotifier routes edit-session outcomes into the shared toast store.
type toastNotifier struct {
	toasts *notify.Store
}

func (n toastNotifier) Success(message string) {
	if n.toasts != nil {
		n.toasts.Success(message)
	}
}

func (n toastNotifier) Error(message string) {
	if n.toasts != nil {
		n.toasts.Error(message)
	}
}

func (s service) submitter() profiledomain.Submitter {
	return profiledomain.NewSubmitHandler(s.store, s.cache.Invalidate)
}

// editSession resolves the browser's edit session. A missing, expired, or
// cross-locale session is recreated from the stored profile; switching locale
// mid-edit deliberately discards the draft.
func (s service) editSession(w http.ResponseWriter, r *http.Request, locale i18n.Locale) (*form.Session, error) {
	if id, ok := sessions.ReadCookie(r); ok {
		if sess, ok := s.registry.Get(id); ok && sess.Locale() == locale {
			return sess, nil
		}
	}
	user, err := s.store.GetUser(httpx.RequestContext(r))
	if err != nil {
		return nil, weberrors.EK(weberrors.KindUnavailable, "web.error.profile_unavailable",
			fmt.Sprintf("load profile: %v", err))
	}
	sess := form.NewSession(form.Config{
		Initial:    user,
		Locale:     locale,
		Submitter:  s.submitter(),
		Notifier:   toastNotifier{toasts: s.toasts},
		ResetDelay: form.DefaultResetDelay,
	})
	id := s.registry.Create(sess)
	sessions.WriteCookie(w, r, id)
	return sess, nil
}
