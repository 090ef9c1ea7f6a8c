package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/profile"
	"github.com/louisbranch/profile.space/internal/profile/form"
	"github.com/louisbranch/profile.space/internal/services/web/routepath"
)

// FormView carries everything the profile form fragment renders.
type FormView struct {
	Name         string
	Email        string
	Bio          string
	Errors       map[string][]string
	ServerError  string
	Pending      bool
	PreviewImage string
	SelectedFile string
}

// FormViewFromSession projects an edit session into its render model.
// Error precedence is the session's: a touched field's client error wins
// over whatever the last submission reported for that field.
func FormViewFromSession(s *form.Session) FormView {
	view := FormView{
		Name:         s.Field(profile.FieldName),
		Email:        s.Field(profile.FieldEmail),
		Bio:          s.Field(profile.FieldBio),
		Errors:       make(map[string][]string),
		Pending:      s.Pending(),
		PreviewImage: s.PreviewImage(),
		SelectedFile: s.SelectedFile(),
	}
	for _, field := range []string{profile.FieldName, profile.FieldEmail, profile.FieldBio} {
		if errs := s.DisplayErrors(field); len(errs) > 0 {
			view.Errors[field] = errs
		}
	}
	if serverErrs := s.DisplayErrors(profile.FieldServer); len(serverErrs) > 0 {
		view.ServerError = serverErrs[0]
	}
	return view
}

// ProfileForm renders the edit form fragment. Inline validation posts the
// changed field to the validate route over HTMX and swaps this fragment back in.
func ProfileForm(page PageContext, view FormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		locale := page.Locale
		if _, err := io.WriteString(w, `<div id="profile-form">`); err != nil {
			return err
		}
		if view.ServerError != "" {
			if _, err := fmt.Fprintf(w, `<div class="form-error-banner" role="alert">%s</div>`, html.EscapeString(view.ServerError)); err != nil {
				return err
			}
		}
		if err := renderAvatarSection(w, page, view); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="%s" hx-post="%s" hx-target="#profile-form" hx-swap="outerHTML" hx-trigger="change from:find input, change from:find textarea">`,
			routepath.Profile(locale), routepath.Validate(locale),
		); err != nil {
			return err
		}
		if err := renderTextInput(w, page.Dict.Form.Name, profile.FieldName, view.Name, view.Errors); err != nil {
			return err
		}
		if err := renderTextInput(w, page.Dict.Form.Email, profile.FieldEmail, view.Email, view.Errors); err != nil {
			return err
		}
		if err := renderTextarea(w, page.Dict.Form.Bio, profile.FieldBio, view.Bio, view.Errors); err != nil {
			return err
		}
		label := page.Dict.Form.Submit
		disabled := ""
		if view.Pending {
			label = page.Dict.Form.Submitting
			disabled = " disabled"
		}
		_, err := fmt.Fprintf(w, `<button type="submit"%s>%s</button></form></div>`, disabled, html.EscapeString(label))
		return err
	})
}

func renderAvatarSection(w io.Writer, page PageContext, view FormView) error {
	locale := page.Locale
	if _, err := fmt.Fprintf(w,
		`<section class="avatar"><img src="%s" alt="%s">`,
		html.EscapeString(view.PreviewImage), html.EscapeString(page.Dict.Form.Avatar.Label),
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<form method="post" action="%s" enctype="multipart/form-data"><label>%s<input type="file" name="avatar" accept="image/*" onchange="this.form.submit()"></label></form>`,
		routepath.Avatar(locale), html.EscapeString(page.Dict.Form.AvatarChoose),
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<form method="post" action="%s"><button type="submit">%s</button></form>`,
		routepath.AvatarRemove(locale), html.EscapeString(page.Dict.Form.AvatarRemove),
	); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `<p class="field-description">%s</p></section>`, html.EscapeString(page.Dict.Form.Avatar.Description))
	return err
}

func renderTextInput(w io.Writer, fieldCopy i18n.FieldCopy, field string, value string, errors map[string][]string) error {
	if _, err := fmt.Fprintf(w,
		`<div class="field"><label for="%s">%s</label><input id="%s" name="%s" value="%s" placeholder="%s">`,
		field, html.EscapeString(fieldCopy.Label), field, field,
		html.EscapeString(value), html.EscapeString(fieldCopy.Placeholder),
	); err != nil {
		return err
	}
	return renderFieldTail(w, field, fieldCopy.Description, errors)
}

func renderTextarea(w io.Writer, fieldCopy i18n.FieldCopy, field string, value string, errors map[string][]string) error {
	if _, err := fmt.Fprintf(w,
		`<div class="field"><label for="%s">%s</label><textarea id="%s" name="%s" placeholder="%s" rows="4">%s</textarea>`,
		field, html.EscapeString(fieldCopy.Label), field, field,
		html.EscapeString(fieldCopy.Placeholder), html.EscapeString(value),
	); err != nil {
		return err
	}
	return renderFieldTail(w, field, fieldCopy.Description, errors)
}

func renderFieldTail(w io.Writer, field string, description string, errors map[string][]string) error {
	if description != "" {
		if _, err := fmt.Fprintf(w, `<p class="field-description">%s</p>`, html.EscapeString(description)); err != nil {
			return err
		}
	}
	for _, msg := range errors[field] {
		if _, err := fmt.Fprintf(w, `<p class="field-error" role="alert">%s</p>`, html.EscapeString(msg)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}
