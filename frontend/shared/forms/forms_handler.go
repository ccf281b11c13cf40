package forms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sessioncontext "companysite/frontend/shared/context"
	"companysite/frontend/shared/html"
	viewsession "companysite/infrastructure/session"
	"companysite/infrastructure/viewstate"
	"companysite/models"
)

// Binding connects one state-backed form to the view session's controller.
type Binding struct {
	Name   string
	Fields []string
	Set    func(c *viewstate.Controller, name, value string) error
	Submit func(ctx context.Context, c *viewstate.Controller) error
}

// FieldCommandHandler applies a single field edit posted as name/value.
func FieldCommandHandler(b Binding) http.HandlerFunc {
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

		name := strings.TrimSpace(r.PostFormValue("name"))
		if err := b.Set(session.Controller, name, r.PostFormValue("value")); err != nil {
			if errors.Is(err, models.ErrUnknownField) {
				slog.Warn("rejected form field", slog.String("form", b.Name), slog.String("field", name))
				http.Error(w, "unknown field", http.StatusBadRequest)
				return
			}
			slog.Error("set form field failed", slog.String("form", b.Name), slog.Any("err", err))
			http.Error(w, "failed to update field", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SubmitCommandHandler applies every posted field of the form and then hands
// the record to the submitter. A validation failure re-renders the page with
// the field errors.
func SubmitCommandHandler(b Binding, render html.PageRenderer) http.HandlerFunc {
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

		for _, name := range b.Fields {
			values, posted := r.PostForm[name]
			if !posted || len(values) == 0 {
				continue
			}
			if err := b.Set(session.Controller, name, values[0]); err != nil {
				slog.Error("apply submitted field failed", slog.String("form", b.Name), slog.String("field", name), slog.Any("err", err))
				http.Error(w, "failed to update field", http.StatusInternalServerError)
				return
			}
		}

		err := b.Submit(r.Context(), session.Controller)
		var verr *viewstate.ValidationError
		switch {
		case err == nil:
			http.Redirect(w, r, viewsession.ViewPath(session.ID), http.StatusSeeOther)
		case errors.As(err, &verr):
			render(w, r, http.StatusUnprocessableEntity, verr.Fields)
		default:
			slog.Error("submit form failed", slog.String("form", b.Name), slog.Any("err", err))
			http.Error(w, "failed to submit form", http.StatusInternalServerError)
		}
	}
}
