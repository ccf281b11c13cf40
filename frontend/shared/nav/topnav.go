package nav

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"companysite/frontend/shared/html"
	"companysite/infrastructure/i18n"
	"companysite/models"
)

// NavItem is one entry of the site menu.
type NavItem struct {
	Page   models.Page
	Label  string
	Active bool
}

// TopNavData is shared with page renderers.
type TopNavData struct {
	Title   string
	LogoAlt string
	Items   []NavItem
}

var menuLabels = map[models.Page]string{
	models.PageHome:     "menu_home",
	models.PageProducts: "menu_products",
	models.PageAbout:    "menu_about",
}

func BuildTopNavData(active models.Page, m i18n.Messages) TopNavData {
	items := make([]NavItem, 0, len(models.Pages()))
	for _, p := range models.Pages() {
		items = append(items, NavItem{Page: p, Label: m.T(menuLabels[p]), Active: p == active})
	}
	return TopNavData{Title: m.T("site_title"), LogoAlt: m.T("logo_alt"), Items: items}
}

// TopNav renders the logo, the company title and the section menu.
func TopNav(data TopNavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header><img src="/assets/logo.svg" alt="%s" width="200" height="100"><h1 class="title">%s</h1><ul class="menu">`,
			templ.EscapeString(data.LogoAlt), templ.EscapeString(data.Title)); err != nil {
			return err
		}
		for _, item := range data.Items {
			classes := []string{"menu-link", item.Page.String() + "-link"}
			li := `<li>`
			if item.Active {
				classes = append(classes, "active")
				li = `<li aria-current="page">`
			}
			if _, err := io.WriteString(w, li); err != nil {
				return err
			}
			if err := html.NavigateButton(item.Page.String(), item.Label, strings.Join(classes, " ")).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></header>`)
		return err
	})
}
