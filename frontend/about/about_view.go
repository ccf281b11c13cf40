package about

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"companysite/frontend/shared/html"
	"companysite/frontend/shared/userinfo"
)

func AboutSection(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="about"><h2 class="subtitle">%s</h2>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if err := html.Form(data.Form).Render(ctx, w); err != nil {
			return err
		}
		if err := userinfo.UserInfo(data.Card).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
