package profile

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile/form"
	weberrors "github.com/louisbranch/profile.space/internal/services/web/platform/errors"
	"github.com/louisbranch/profile.space/internal/services/web/platform/flash"
	"github.com/louisbranch/profile.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/profile.space/internal/services/web/platform/notify"
	"github.com/louisbranch/profile.space/internal/services/web/platform/sessions"
	"github.com/louisbranch/profile.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/profile.space/internal/services/web/templates"

	profiledomain "github.com/louisbranch/profile.space/internal/profile"
)

const flashKeySuccess = "profile.notification.success"
const flashKeyError = "profile.notification.error"

type handlers struct {
	svc service
}

func newHandlers(svc service) handlers {
	return handlers{svc: svc}
}

func localeFromRequest(r *http.Request) (i18n.Locale, bool) {
	return i18n.Parse(r.PathValue("locale"))
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	notice, hasNotice := flash.ReadAndClear(w, r)
	_, hasSession := sessions.ReadCookie(r)

	// Cached pages only serve visitors with no edit state of their own.
	cacheable := !hasNotice && !hasSession
	if cacheable {
		if cached, ok := h.svc.cache.Get(locale); ok {
			_ = httpx.WriteHTML(w, http.StatusOK, cached)
			return
		}
	}

	sess, err := h.svc.editSession(w, r, locale)
	if err != nil {
		h.writeErrorPage(w, r, locale, err)
		return
	}

	page := webtemplates.NewPageContext(locale, r.URL.Path, h.svc.appName)
	body := webtemplates.Join(
		webtemplates.Header(page),
		webtemplates.LanguageSwitcher(page),
		h.noticeToast(page, notice, hasNotice),
		webtemplates.Toast(h.svc.toasts),
		webtemplates.ProfileForm(page, webtemplates.FormViewFromSession(sess)),
	)
	rendered, err := renderToString(r, webtemplates.Page(page, body))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if cacheable {
		h.svc.cache.Set(locale, rendered)
	}
	_ = httpx.WriteHTML(w, http.StatusOK, rendered)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess, ok := h.editSessionOrError(w, r, locale)
	if !ok {
		return
	}
	h.applyFormValues(r, sess)

	state := sess.Submit(httpx.RequestContext(r))

	if httpx.IsHTMXRequest(r) {
		h.writeFormFragment(w, r, locale, sess)
		return
	}
	if state.Success {
		flash.Write(w, r, flash.NoticeSuccess(flashKeySuccess))
	} else {
		flash.Write(w, r, flash.NoticeError(flashKeyError))
	}
	httpx.WriteRedirect(w, r, routepath.Page(locale))
}

func (h handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess, ok := h.editSessionOrError(w, r, locale)
	if !ok {
		return
	}
	h.applyFormValues(r, sess)
	if trigger := r.Header.Get("HX-Trigger-Name"); trigger != "" {
		sess.Blur(trigger)
	}
	h.writeFormFragment(w, r, locale, sess)
}

func (h handlers) handleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess, ok := h.editSessionOrError(w, r, locale)
	if !ok {
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, form.MaxAvatarBytes+1))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	// Rejections surface through the session's notifier; the redirect below
	// re-renders whatever preview state survived.
	_ = sess.SelectAvatar(header.Filename, header.Header.Get("Content-Type"), data)

	if httpx.IsHTMXRequest(r) {
		h.writeFormFragment(w, r, locale, sess)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Page(locale))
}

func (h handlers) handleAvatarRemove(w http.ResponseWriter, r *http.Request) {
	locale, ok := localeFromRequest(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess, ok := h.editSessionOrError(w, r, locale)
	if !ok {
		return
	}
	sess.RemoveAvatar()
	if httpx.IsHTMXRequest(r) {
		h.writeFormFragment(w, r, locale, sess)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Page(locale))
}

func (h handlers) handleLanguageSwitch(w http.ResponseWriter, r *http.Request) {
	if _, ok := localeFromRequest(r); !ok {
		http.NotFound(w, r)
		return
	}
	target, ok := i18n.Parse(r.URL.Query().Get("lang"))
	if !ok {
		target = i18n.DefaultLocale
	}
	httpx.WriteRedirect(w, r, routepath.Page(target))
}

func (h handlers) editSessionOrError(w http.ResponseWriter, r *http.Request, locale i18n.Locale) (*form.Session, bool) {
	sess, err := h.svc.editSession(w, r, locale)
	if err != nil {
		h.writeErrorPage(w, r, locale, err)
		return nil, false
	}
	return sess, true
}

func (h handlers) applyFormValues(r *http.Request, sess *form.Session) {
	if err := r.ParseForm(); err != nil {
		return
	}
	for _, field := range []string{profiledomain.FieldName, profiledomain.FieldEmail, profiledomain.FieldBio} {
		if !r.PostForm.Has(field) {
			continue
		}
		sess.SetField(field, r.PostFormValue(field))
	}
}

func (h handlers) writeFormFragment(w http.ResponseWriter, r *http.Request, locale i18n.Locale, sess *form.Session) {
	page := webtemplates.NewPageContext(locale, r.URL.Path, h.svc.appName)
	fragment := webtemplates.Join(
		webtemplates.Toast(h.svc.toasts),
		webtemplates.ProfileForm(page, webtemplates.FormViewFromSession(sess)),
	)
	rendered, err := renderToString(r, fragment)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, rendered)
}

func (h handlers) writeErrorPage(w http.ResponseWriter, r *http.Request, locale i18n.Locale, cause error) {
	key := weberrors.LocalizationKey(cause)
	if key == "" {
		key = "web.error.profile_unavailable"
	}
	page := webtemplates.NewPageContext(locale, r.URL.Path, h.svc.appName)
	rendered, err := renderToString(r, webtemplates.Page(page, webtemplates.ErrorPage(page, key)))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, weberrors.HTTPStatus(cause), rendered)
}

func (h handlers) noticeToast(page webtemplates.PageContext, notice flash.Notice, present bool) templ.Component {
	if !present {
		return nil
	}
	severity := notify.SeveritySuccess
	if notice.Kind == flash.KindError {
		severity = notify.SeverityError
	}
	return webtemplates.ToastMessage(severity, webtemplates.T(page.Loc, notice.Key))
}

func renderToString(r *http.Request, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(httpx.RequestContext(r), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
