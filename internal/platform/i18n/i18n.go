// Package i18n defines the supported locales and language negotiation.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a supported language.
type Locale string

const (
	// LocaleEN is English, rendered left-to-right.
	LocaleEN Locale = "en"
	// LocaleAR is Arabic, rendered right-to-left.
	LocaleAR Locale = "ar"
)

// DefaultLocale is used when negotiation finds no supported language.
const DefaultLocale = LocaleEN

var supported = []Locale{LocaleEN, LocaleAR}

var supportedTags = []language.Tag{
	language.MustParse("en"),
	language.MustParse("ar"),
}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the supported locales in preference order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// SupportedTags returns the supported language tags in preference order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// Parse resolves a raw tag value to a supported locale.
// Regional variants collapse to their base language ("ar-EG" resolves to "ar").
func Parse(value string) (Locale, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	for _, locale := range supported {
		if base.String() == string(locale) {
			return locale, true
		}
	}
	return "", false
}

// Tag returns the language tag for a supported locale.
func Tag(locale Locale) language.Tag {
	for idx, candidate := range supported {
		if candidate == locale {
			return supportedTags[idx]
		}
	}
	return DefaultTag()
}

// Match returns the best supported locale for the preferred tags.
func Match(preferred []language.Tag) Locale {
	if len(preferred) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supported[index]
}

// Negotiate resolves an Accept-Language header value to a supported locale.
func Negotiate(acceptLanguage string) Locale {
	trimmed := strings.TrimSpace(acceptLanguage)
	if trimmed == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(trimmed)
	if err != nil {
		return DefaultLocale
	}
	return Match(tags)
}

// Direction returns the text direction attribute value for a locale.
func Direction(locale Locale) string {
	if locale == LocaleAR {
		return "rtl"
	}
	return "ltr"
}
