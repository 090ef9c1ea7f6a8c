package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// Page wraps a body component in the shared document layout. The html element
// carries the locale's lang and dir attributes so the browser lays the page
// out correctly for RTL locales.
func Page(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q dir=%q><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script src=%q defer></script></head><body><main class="page">`,
			page.Lang, page.Dir, html.EscapeString(page.Dict.Page.Title), htmxScriptURL,
		); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Header renders the page heading block.
func Header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<header class="page-header"><h1>%s</h1><p>%s</p></header>`,
			html.EscapeString(page.Dict.Page.Title),
			html.EscapeString(page.Dict.Page.Subtitle),
		)
		return err
	})
}

// Join renders components in sequence.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
