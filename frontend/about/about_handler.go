package about

import (
	"context"
	"net/http"

	"companysite/frontend/shared/forms"
	"companysite/frontend/shared/html"
	"companysite/infrastructure/viewstate"
	"companysite/models"
)

var aboutForm = forms.Binding{
	Name:   "about",
	Fields: models.AboutFormFields(),
	Set: func(c *viewstate.Controller, name, value string) error {
		return c.SetAboutField(name, value)
	},
	Submit: func(ctx context.Context, c *viewstate.Controller) error {
		return c.SubmitAboutForm(ctx)
	},
}

func UpdateAboutFieldCommandHandler() http.HandlerFunc {
	return forms.FieldCommandHandler(aboutForm)
}

func SubmitAboutFormCommandHandler(render html.PageRenderer) http.HandlerFunc {
	return forms.SubmitCommandHandler(aboutForm, render)
}
