package api

import (
	"net/http"

	"github.com/louisbranch/profile.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIUser, h.handleGetUser)
	mux.HandleFunc(http.MethodPut+" "+routepath.APIUser, h.handleUpdateUser)
}
