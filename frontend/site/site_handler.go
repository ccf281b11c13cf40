package site

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"companysite/frontend/about"
	"companysite/frontend/home"
	"companysite/frontend/products"
	sessioncontext "companysite/frontend/shared/context"
	"companysite/frontend/shared/html"
	"companysite/frontend/shared/nav"
	"companysite/infrastructure/i18n"
	viewsession "companysite/infrastructure/session"
	"companysite/infrastructure/viewstate"
	"companysite/models"
)

// Section returns the view for the active page of s.
func Section(s viewstate.State, fieldErrors map[string]string, m i18n.Messages) templ.Component {
	switch s.Page {
	case models.PageProducts:
		return products.ProductsSection(products.BuildPageData(s.Product, fieldErrors, m))
	case models.PageAbout:
		return about.AboutSection(about.BuildPageData(s.About, fieldErrors, m))
	default:
		return home.HomeSection(home.BuildPageData(m))
	}
}

// Page renders the header and the active section.
func Page(s viewstate.State, fieldErrors map[string]string, m i18n.Messages, lang string) templ.Component {
	body := html.Fragments(
		nav.TopNav(nav.BuildTopNavData(s.Page, m)),
		Section(s, fieldErrors, m),
	)
	return html.Layout(lang, m.T("site_title"), body)
}

// RenderPage writes the page for the request's view session with status.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, fieldErrors map[string]string) {
	session, ok := sessioncontext.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no view session", http.StatusInternalServerError)
		return
	}
	m := sessioncontext.GetMessagesFromContext(r.Context())

	var buf bytes.Buffer
	if err := Page(session.Controller.Snapshot(), fieldErrors, m, m.Lang()).Render(r.Context(), &buf); err != nil {
		slog.Error("render page failed", slog.Any("err", err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

var _ html.PageRenderer = RenderPage

func SitePageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RenderPage(w, r, http.StatusOK, nil)
	}
}

// NavigateCommandHandler switches the active section and redirects back to the page view.
func NavigateCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Error(w, "no view session", http.StatusInternalServerError)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		page, err := models.ParsePage(r.PostFormValue("page"))
		if err == nil {
			err = session.Controller.Navigate(page)
		}
		if err != nil {
			if errors.Is(err, models.ErrUnknownPage) {
				http.Error(w, "unknown page", http.StatusBadRequest)
				return
			}
			slog.Error("navigate failed", slog.Any("err", err))
			http.Error(w, "failed to navigate", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, viewsession.ViewPath(session.ID), http.StatusSeeOther)
	}
}

// ViewCloser drops a page view by id.
type ViewCloser interface {
	DeleteSessionBySessionToken(token string)
}

// CloseViewCommandHandler tears down the page view named by v. Pages call it
// when they are unloaded.
func CloseViewCommandHandler(views ViewCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.PostFormValue(viewsession.ViewParam))
		if id == "" {
			http.Error(w, "missing page view", http.StatusBadRequest)
			return
		}
		views.DeleteSessionBySessionToken(id)
		w.WriteHeader(http.StatusNoContent)
	}
}
