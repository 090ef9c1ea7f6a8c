// Package profile holds the user profile domain: the profile record, the
// localized validation schemas shared by client and server paths, and the
// server-side submission handler.
package profile

import "strings"

// Field names as rendered in the form and keyed in error maps.
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldBio    = "bio"
	FieldAvatar = "avatar"

	// FieldServer is the synthetic key carrying non-field submission failures.
	FieldServer = "server"
)

// UserProfile is one user's stored profile record.
//
// ID is server-assigned and never changes after creation. Avatar is either a
// stored URL or a transient preview reference; the preview supersedes the
// stored URL only inside an editing session.
type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// FieldErrors maps a field name to its ordered validation messages.
// An absent field means the field is valid.
type FieldErrors map[string][]string

// Has reports whether the field carries at least one message.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message for a field, or empty.
func (e FieldErrors) First(field string) string {
	messages := e[field]
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}

// FormState is the canonical result of the most recent submission attempt.
// It is replaced wholesale after each attempt, never partially mutated.
type FormState struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// FormFields carries the user-submitted text fields of one submission.
// The avatar travels out of band and the id is server-assigned.
type FormFields struct {
	Name  string
	Email string
	Bio   string
}

// Values is the field set validated by a schema. Schemas ignore fields they
// carry no rules for, so one Values works for all three schemas.
type Values struct {
	ID     string
	Name   string
	Email  string
	Bio    string
	Avatar string
}

// ValuesFromProfile maps a stored profile onto schema input.
func ValuesFromProfile(p UserProfile) Values {
	return Values{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Bio:    p.Bio,
		Avatar: p.Avatar,
	}
}

func (v Values) field(name string) string {
	switch name {
	case FieldID:
		return v.ID
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldBio:
		return v.Bio
	case FieldAvatar:
		return v.Avatar
	default:
		return ""
	}
}

// TrimmedFields normalizes submitted form fields.
func TrimmedFields(name, email, bio string) FormFields {
	return FormFields{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Bio:   strings.TrimSpace(bio),
	}
}
