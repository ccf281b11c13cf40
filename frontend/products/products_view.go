package products

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"companysite/frontend/shared/html"
)

func ProductsSection(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="products"><h2 class="subtitle">%s</h2>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if err := html.Form(data.Form).Render(ctx, w); err != nil {
			return err
		}
		if err := CatalogList(data.Rows).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<p><a href="%s">%s</a></p></section>`, templ.EscapeString(data.SheetHref), templ.EscapeString(data.SheetLabel))
		return err
	})
}

// CatalogList renders one row per catalog entry, keyed by its id.
func CatalogList(rows []CatalogRow) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="catalog">`)
		for _, row := range rows {
			fmt.Fprintf(&b, `<div class="catalog-row" data-id="%d"><h3>%s</h3><div class="condition">%s</div><div class="price">%s</div></div>`,
				row.ID, templ.EscapeString(row.Title), templ.EscapeString(row.Condition), templ.EscapeString(row.Price))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
