package profile

import (
	"net/http"

	"github.com/louisbranch/profile.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePagePattern, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.LocaleProfilePattern, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.LocaleValidatePattern, h.handleValidate)
	mux.HandleFunc(http.MethodPost+" "+routepath.LocaleAvatarPattern, h.handleAvatarUpload)
	mux.HandleFunc(http.MethodPost+" "+routepath.LocaleAvatarDropPattern, h.handleAvatarRemove)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleSwitchPattern, h.handleLanguageSwitch)
}
