package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ErrorPage renders a localized error body for failed page loads.
func ErrorPage(page PageContext, messageKey string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="error-page"><h1>%s</h1><p>%s</p></section>`,
			html.EscapeString(T(page.Loc, "web.error.title")),
			html.EscapeString(T(page.Loc, messageKey)),
		)
		return err
	})
}
