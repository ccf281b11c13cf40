package about

import (
	"companysite/frontend/shared/html"
	"companysite/frontend/shared/userinfo"
	"companysite/infrastructure/i18n"
	"companysite/models"
)

type PageData struct {
	Title string
	Form  html.FormData
	Card  userinfo.Data
}

var fieldLabels = map[string]string{
	models.FieldFirstName: "first_name",
	models.FieldLastName:  "last_name",
	models.FieldEmail:     "email",
	models.FieldPassword:  "password",
	models.FieldNotes:     "notes",
}

// BuildPageData maps the about record to the form and the live user info card.
func BuildPageData(form models.AboutForm, fieldErrors map[string]string, m i18n.Messages) PageData {
	fields := make([]html.FormField, 0, 5)
	for _, f := range form.Fields() {
		inputType := "text"
		switch f.Name {
		case models.FieldPassword:
			inputType = "password"
		case models.FieldEmail:
			inputType = "email"
		}
		fields = append(fields, html.FormField{
			Name:  f.Name,
			Label: m.T(fieldLabels[f.Name]),
			Type:  inputType,
			Value: f.Value,
			Error: fieldErrors[f.Name],
		})
	}
	return PageData{
		Title: m.T("about_title"),
		Form: html.FormData{
			ID:             "about-form",
			Class:          "about-form",
			Action:         "/forms/about",
			FieldsEndpoint: "/forms/about/fields",
			SubmitLabel:    m.T("submit"),
			Fields:         fields,
		},
		Card: userinfo.Data{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Notes:     form.Notes,
			Password:  form.Password,
		},
	}
}
