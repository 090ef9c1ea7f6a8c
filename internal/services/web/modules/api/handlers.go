package api

import (
	"encoding/json"
	"net/http"

	"github.com/louisbranch/profile.space/internal/account"
	"github.com/louisbranch/profile.space/internal/platform/i18n"
	"github.com/louisbranch/profile.space/internal/services/web/platform/httpx"

	profiledomain "github.com/louisbranch/profile.space/internal/profile"
)

type handlers struct {
	store UserStore
}

func newHandlers(store UserStore) handlers {
	return handlers{store: store}
}

type updateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type updateResponse struct {
	Success bool                       `json:"success"`
	User    *profiledomain.UserProfile `json:"user,omitempty"`
	Errors  profiledomain.FieldErrors  `json:"errors,omitempty"`
	Message string                     `json:"message"`
}

func (h handlers) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(httpx.RequestContext(r))
	if err != nil {
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, updateResponse{
			Success: false,
			Message: "Failed to load user",
		})
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// handleUpdateUser validates the JSON body against the locale's submission
// schema. The stored id is authoritative; a client cannot move the update to
// another profile.
func (h handlers) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, updateResponse{
			Success: false,
			Message: "Failed to update profile",
		})
		return
	}

	locale := i18n.Negotiate(r.Header.Get("Accept-Language"))
	fields := profiledomain.TrimmedFields(req.Name, req.Email, req.Bio)
	result := profiledomain.NewSchemas(locale).Submission.Validate(profiledomain.Values{
		Name:  fields.Name,
		Email: fields.Email,
		Bio:   fields.Bio,
	})
	if !result.OK {
		_ = httpx.WriteJSON(w, http.StatusBadRequest, updateResponse{
			Success: false,
			Errors:  result.Errors,
			Message: "Validation failed",
		})
		return
	}

	user, err := h.store.UpdateUser(httpx.RequestContext(r), account.DefaultUserID, fields)
	if err != nil {
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, updateResponse{
			Success: false,
			Message: "Failed to update profile",
		})
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, updateResponse{
		Success: true,
		User:    &user,
		Message: i18n.DictionaryFor(locale).Notifications.Success,
	})
}
