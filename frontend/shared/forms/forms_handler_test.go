package forms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sessioncontext "companysite/frontend/shared/context"
	"companysite/infrastructure/viewstate"
	"companysite/models"
)

type stubSubmitter struct {
	product models.ProductForm
	err     error
}

func (s *stubSubmitter) SubmitProduct(_ context.Context, form models.ProductForm) error {
	s.product = form
	return s.err
}

func (s *stubSubmitter) SubmitAbout(context.Context, models.AboutForm) error { return s.err }

var productBinding = Binding{
	Name:   "product",
	Fields: models.ProductFormFields(),
	Set: func(c *viewstate.Controller, name, value string) error {
		return c.SetProductField(name, value)
	},
	Submit: func(ctx context.Context, c *viewstate.Controller) error {
		return c.SubmitProductForm(ctx)
	},
}

func newFormRequest(path string, form url.Values, session *viewstate.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req = req.WithContext(sessioncontext.NewContextWithSession(req.Context(), session))
	}
	return req
}

func newSession(submitter viewstate.Submitter) *viewstate.Session {
	return &viewstate.Session{ID: "test", Controller: viewstate.NewController(submitter)}
}

func TestFieldCommandHandler_AppliesEdit(t *testing.T) {
	session := newSession(nil)
	rr := httptest.NewRecorder()
	FieldCommandHandler(productBinding).ServeHTTP(rr, newFormRequest("/forms/product/fields", url.Values{
		"name":  {"productName"},
		"value": {"Car"},
	}, session))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if got := session.Controller.Snapshot().Product.ProductName; got != "Car" {
		t.Fatalf("expected Car, got %q", got)
	}
}

func TestFieldCommandHandler_UnknownFieldReturnsBadRequest(t *testing.T) {
	session := newSession(nil)
	rr := httptest.NewRecorder()
	FieldCommandHandler(productBinding).ServeHTTP(rr, newFormRequest("/forms/product/fields", url.Values{
		"name":  {"firstName"},
		"value": {"Jane"},
	}, session))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "unknown field") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
	if session.Controller.Snapshot() != viewstate.InitialState() {
		t.Fatalf("expected state to be unchanged")
	}
}

func TestFieldCommandHandler_NoSession(t *testing.T) {
	rr := httptest.NewRecorder()
	FieldCommandHandler(productBinding).ServeHTTP(rr, newFormRequest("/forms/product/fields", url.Values{}, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestSubmitCommandHandler_SubmitsAndRedirects(t *testing.T) {
	sub := &stubSubmitter{}
	session := newSession(sub)
	rr := httptest.NewRecorder()
	render := func(http.ResponseWriter, *http.Request, int, map[string]string) {
		t.Fatalf("render should not be called on success")
	}
	SubmitCommandHandler(productBinding, render).ServeHTTP(rr, newFormRequest("/forms/product", url.Values{
		"productName":  {"Boat"},
		"productPrice": {"12"},
		"ignored":      {"x"},
	}, session))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/?v=test" {
		t.Fatalf("expected 303 back to the page view, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if sub.product != (models.ProductForm{ProductName: "Boat", ProductPrice: "12"}) {
		t.Fatalf("unexpected submitted record %+v", sub.product)
	}
}

func TestSubmitCommandHandler_ValidationErrorRenders(t *testing.T) {
	sub := &stubSubmitter{err: &viewstate.ValidationError{Fields: map[string]string{"productPrice": "required"}}}
	session := newSession(sub)

	var gotStatus int
	var gotErrors map[string]string
	render := func(w http.ResponseWriter, _ *http.Request, status int, fieldErrors map[string]string) {
		gotStatus, gotErrors = status, fieldErrors
		w.WriteHeader(status)
	}
	rr := httptest.NewRecorder()
	SubmitCommandHandler(productBinding, render).ServeHTTP(rr, newFormRequest("/forms/product", url.Values{}, session))

	if gotStatus != http.StatusUnprocessableEntity || rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if gotErrors["productPrice"] != "required" {
		t.Fatalf("unexpected field errors %v", gotErrors)
	}
}

func TestSubmitCommandHandler_SubmitterFailure(t *testing.T) {
	session := newSession(&stubSubmitter{err: errors.New("downstream unavailable")})
	rr := httptest.NewRecorder()
	SubmitCommandHandler(productBinding, nil).ServeHTTP(rr, newFormRequest("/forms/product", url.Values{}, session))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
