package home

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"companysite/frontend/shared/html"
	"companysite/frontend/shared/userinfo"
	"companysite/infrastructure/i18n"
	"companysite/models"
)

type PageData struct {
	Title       string
	Card        userinfo.Data
	AboutTarget string
	AboutLabel  string
}

// BuildPageData returns the home section: a fixed sample card and a link to About.
func BuildPageData(m i18n.Messages) PageData {
	return PageData{
		Title: m.T("home_title"),
		Card: userinfo.Data{
			FirstName: "John",
			LastName:  "Doe",
			Notes:     "This is a note",
			Password:  "password",
			Color:     "pink",
		},
		AboutTarget: models.PageAbout.String(),
		AboutLabel:  m.T("go_to_about"),
	}
}

func HomeSection(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="home"><h2 class="subtitle">%s</h2>`, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if err := userinfo.UserInfo(data.Card).Render(ctx, w); err != nil {
			return err
		}
		if err := html.NavigateButton(data.AboutTarget, data.AboutLabel, "link").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
