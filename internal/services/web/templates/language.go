package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/services/web/routepath"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Locale i18n.Locale
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	options := make([]LanguageOption, 0, len(i18n.Supported()))
	for _, locale := range i18n.Supported() {
		options = append(options, LanguageOption{
			Locale: locale,
			Label:  languageLabel(page, locale),
			URL:    routepath.LanguageSwitch(page.Locale) + "?lang=" + string(locale),
			Active: locale == page.Locale,
		})
	}
	return options
}

func languageLabel(page PageContext, locale i18n.Locale) string {
	return T(page.Loc, "web.nav.lang_"+string(locale))
}

// LanguageSwitcher renders the locale links. Each link goes through the
// switch route and lands on the target locale's profile page.
func LanguageSwitcher(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="language-switcher">`); err != nil {
			return err
		}
		for _, option := range LanguageOptions(page) {
			class := "language-link"
			if option.Active {
				class += " active"
			}
			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s" hreflang="%s">%s</a>`,
				class, html.EscapeString(option.URL), option.Locale, html.EscapeString(option.Label),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}
