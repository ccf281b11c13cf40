package html

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	sessioncontext "companysite/frontend/shared/context"
)

// Layout wraps body in the document shell shared by every page.
func Layout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html><html lang=\"%s\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title><link rel=\"icon\" href=\"/assets/logo.svg\"><link rel=\"stylesheet\" href=\"/assets/app.css\"></head><body data-view=\"%s\">",
			templ.EscapeString(lang), templ.EscapeString(title), templ.EscapeString(viewID(ctx))); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, FormScript()+"</body></html>")
		return err
	})
}

func viewID(ctx context.Context) string {
	if s, ok := sessioncontext.GetSessionFromContext(ctx); ok {
		return s.ID
	}
	return ""
}

// Fragments joins components in order.
func Fragments(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if p == nil {
				continue
			}
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
