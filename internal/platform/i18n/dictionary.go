package i18n

import "github.com/louisbranch/profile.space/internal/platform/i18n/catalog"

// Dictionary holds every localized string the profile editor renders.
type Dictionary struct {
	Page          PageCopy
	Form          FormCopy
	Validation    ValidationCopy
	Notifications NotificationCopy
}

// PageCopy holds page chrome strings.
type PageCopy struct {
	Title    string
	Subtitle string
}

// FieldCopy holds label and placeholder strings for one input.
type FieldCopy struct {
	Label       string
	Placeholder string
	Description string
}

// FormCopy holds form input and control strings.
type FormCopy struct {
	Name         FieldCopy
	Email        FieldCopy
	Bio          FieldCopy
	Avatar       FieldCopy
	AvatarChoose string
	AvatarRemove string
	Submit       string
	Submitting   string
}

// ValidationCopy holds validation failure messages.
type ValidationCopy struct {
	NameRequired   string
	NameMinLength  string
	NameMaxLength  string
	EmailRequired  string
	EmailInvalid   string
	BioMaxLength   string
	IDRequired     string
	AvatarNotImage string
	AvatarTooLarge string
	ServerError    string
	ServerRetry    string
}

// NotificationCopy holds submission outcome strings.
type NotificationCopy struct {
	Success string
	Error   string
}

// DictionaryFor returns the localized dictionary for a locale.
// Missing keys fall back to the base locale via the catalog bundle.
func DictionaryFor(locale Locale) Dictionary {
	lookup := func(key string) string {
		value, _ := catalog.Default().Message(string(locale), key)
		return value
	}
	return Dictionary{
		Page: PageCopy{
			Title:    lookup("profile.page.title"),
			Subtitle: lookup("profile.page.subtitle"),
		},
		Form: FormCopy{
			Name: FieldCopy{
				Label:       lookup("profile.form.name.label"),
				Placeholder: lookup("profile.form.name.placeholder"),
			},
			Email: FieldCopy{
				Label:       lookup("profile.form.email.label"),
				Placeholder: lookup("profile.form.email.placeholder"),
			},
			Bio: FieldCopy{
				Label:       lookup("profile.form.bio.label"),
				Placeholder: lookup("profile.form.bio.placeholder"),
				Description: lookup("profile.form.bio.description"),
			},
			Avatar: FieldCopy{
				Label:       lookup("profile.form.avatar.label"),
				Description: lookup("profile.form.avatar.description"),
			},
			AvatarChoose: lookup("profile.form.avatar.choose"),
			AvatarRemove: lookup("profile.form.avatar.remove"),
			Submit:       lookup("profile.form.submit"),
			Submitting:   lookup("profile.form.submitting"),
		},
		Validation: ValidationCopy{
			NameRequired:   lookup("profile.validation.name.required"),
			NameMinLength:  lookup("profile.validation.name.min_length"),
			NameMaxLength:  lookup("profile.validation.name.max_length"),
			EmailRequired:  lookup("profile.validation.email.required"),
			EmailInvalid:   lookup("profile.validation.email.invalid"),
			BioMaxLength:   lookup("profile.validation.bio.max_length"),
			IDRequired:     lookup("profile.validation.id.required"),
			AvatarNotImage: lookup("profile.validation.avatar.not_image"),
			AvatarTooLarge: lookup("profile.validation.avatar.too_large"),
			ServerError:    lookup("profile.validation.server.error"),
			ServerRetry:    lookup("profile.validation.server.retry"),
		},
		Notifications: NotificationCopy{
			Success: lookup("profile.notification.success"),
			Error:   lookup("profile.notification.error"),
		},
	}
}
