package templates

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Dir         string
	Locale      i18n.Locale
	Dict        i18n.Dictionary
	Loc         Localizer
	CurrentPath string
	AppName     string
}

// NewPageContext builds the layout context for a locale.
func NewPageContext(locale i18n.Locale, currentPath string, appName string) PageContext {
	return PageContext{
		Lang:        string(locale),
		Dir:         i18n.Direction(locale),
		Locale:      locale,
		Dict:        i18n.DictionaryFor(locale),
		Loc:         message.NewPrinter(i18n.Tag(locale)),
		CurrentPath: currentPath,
		AppName:     appName,
	}
}

// IsRTL reports whether the page renders right to left.
func (p PageContext) IsRTL() bool {
	return p.Dir == "rtl"
}
