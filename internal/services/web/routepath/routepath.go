// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"github.com/louisbranch/profile.space/internal/platform/i18n"
)

const (
	Root       = "/"
	Health     = "/up"
	APIUser    = "/api/user"
	StaticRoot = "/static/"

	// Locale-prefixed page patterns. Every rendered page lives under an
	// explicit locale segment so cached pages never leak across locales.
	LocalePagePattern       = "/{locale}/{$}"
	LocaleProfilePattern    = "/{locale}/profile"
	LocaleValidatePattern   = "/{locale}/profile/validate"
	LocaleAvatarPattern     = "/{locale}/profile/avatar"
	LocaleAvatarDropPattern = "/{locale}/profile/avatar/remove"
	LocaleSwitchPattern     = "/{locale}/language"
)

// Page returns the profile page route for a locale.
func Page(locale i18n.Locale) string {
	return "/" + string(locale) + "/"
}

// Profile returns the profile submit route for a locale.
func Profile(locale i18n.Locale) string {
	return "/" + string(locale) + "/profile"
}

// Validate returns the field validation route for a locale.
func Validate(locale i18n.Locale) string {
	return Profile(locale) + "/validate"
}

// Avatar returns the avatar upload route for a locale.
func Avatar(locale i18n.Locale) string {
	return Profile(locale) + "/avatar"
}

// AvatarRemove returns the avatar removal route for a locale.
func AvatarRemove(locale i18n.Locale) string {
	return Avatar(locale) + "/remove"
}

// LanguageSwitch returns the language switch route for a locale.
func LanguageSwitch(locale i18n.Locale) string {
	return "/" + string(locale) + "/language"
}
