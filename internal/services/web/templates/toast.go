package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/profile.space/internal/services/web/platform/notify"
)

// Toast renders the visible notification, or nothing when the slot is empty.
func Toast(store *notify.Store) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if store == nil {
			return nil
		}
		current, ok := store.Current()
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s" role="status" data-toast-id="%d">%s</div>`,
			current.Severity, current.ID, html.EscapeString(current.Message),
		)
		return err
	})
}

// ToastMessage renders a one-off notification outside the store, used for
// flash notices carried across a redirect.
func ToastMessage(severity notify.Severity, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s" role="status">%s</div>`,
			severity, html.EscapeString(message),
		)
		return err
	})
}
