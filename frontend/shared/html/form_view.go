package html

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	sessioncontext "companysite/frontend/shared/context"
	"companysite/infrastructure/session"
)

// CSRFField is the form field the CSRF middleware reads the echoed token from.
const CSRFField = "_csrf"

// PageRenderer writes the full page for the current view session. Form
// handlers call it to re-render with field errors.
type PageRenderer func(w http.ResponseWriter, r *http.Request, status int, fieldErrors map[string]string)

// FormField is one labelled input of a state-backed form.
type FormField struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

// FormData describes a form whose inputs mirror a server-side record.
type FormData struct {
	ID             string
	Class          string
	Action         string
	FieldsEndpoint string
	SubmitLabel    string
	Fields         []FormField
}

// hiddenState renders the CSRF token and page view id of the request so a
// form posts back to the same view with or without the page script.
func hiddenState(ctx context.Context, b *strings.Builder) {
	if token := sessioncontext.GetCSRFTokenFromContext(ctx); token != "" {
		fmt.Fprintf(b, `<input type="hidden" name="%s" value="%s">`, CSRFField, templ.EscapeString(token))
	}
	if s, ok := sessioncontext.GetSessionFromContext(ctx); ok {
		fmt.Fprintf(b, `<input type="hidden" name="%s" value="%s">`, session.ViewParam, templ.EscapeString(s.ID))
	}
}

func Form(data FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<form id="%s" class="%s" method="post" action="%s" data-fields-endpoint="%s">`,
			templ.EscapeString(data.ID), templ.EscapeString(data.Class), templ.EscapeString(data.Action), templ.EscapeString(data.FieldsEndpoint))
		hiddenState(ctx, &b)
		for _, f := range data.Fields {
			inputID := data.ID + "-" + f.Name
			inputType := f.Type
			if inputType == "" {
				inputType = "text"
			}
			fmt.Fprintf(&b, `<label for="%s">%s</label>`, templ.EscapeString(inputID), templ.EscapeString(f.Label))
			fmt.Fprintf(&b, `<input id="%s" name="%s" type="%s" value="%s">`,
				templ.EscapeString(inputID), templ.EscapeString(f.Name), templ.EscapeString(inputType), templ.EscapeString(f.Value))
			if f.Error != "" {
				fmt.Fprintf(&b, `<p class="field-error" data-field="%s">%s</p>`, templ.EscapeString(f.Name), templ.EscapeString(f.Error))
			}
		}
		fmt.Fprintf(&b, `<button type="submit">%s</button></form>`, templ.EscapeString(data.SubmitLabel))
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NavigateButton renders a one-button form that switches the page view to page.
// The target travels in a hidden input so a scripted form.submit() keeps it.
func NavigateButton(page, label, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form class="navigate" method="post" action="/navigate">`)
		hiddenState(ctx, &b)
		fmt.Fprintf(&b, `<input type="hidden" name="page" value="%s"><button type="submit" class="%s">%s</button></form>`,
			templ.EscapeString(page), templ.EscapeString(class), templ.EscapeString(label))
		_, err := io.WriteString(w, b.String())
		return err
	})
}
