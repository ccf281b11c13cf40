package products

import (
	"strconv"

	"companysite/frontend/shared/html"
	"companysite/infrastructure/i18n"
	"companysite/models"
)

type CatalogRow struct {
	ID        int64
	Title     string
	Condition string
	Price     string
}

type PageData struct {
	Title      string
	Form       html.FormData
	Rows       []CatalogRow
	SheetLabel string
	SheetHref  string
}

var fieldLabels = map[string]string{
	models.FieldProductName:   "product_name",
	models.FieldProductPrice:  "product_price",
	models.FieldProductNumber: "product_number",
	models.FieldNotes:         "notes",
}

func BuildCatalogRows(entries []models.CatalogEntry) []CatalogRow {
	rows := make([]CatalogRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, CatalogRow{
			ID:        e.ID,
			Title:     e.Title,
			Condition: e.Condition.String(),
			Price:     strconv.FormatInt(e.Price, 10),
		})
	}
	return rows
}

// BuildPageData maps the product record and the catalog to the section view.
func BuildPageData(form models.ProductForm, fieldErrors map[string]string, m i18n.Messages) PageData {
	fields := make([]html.FormField, 0, 4)
	for _, f := range form.Fields() {
		fields = append(fields, html.FormField{
			Name:  f.Name,
			Label: m.T(fieldLabels[f.Name]),
			Value: f.Value,
			Error: fieldErrors[f.Name],
		})
	}
	return PageData{
		Title: m.T("products_title"),
		Form: html.FormData{
			ID:             "product-form",
			Class:          "product-form",
			Action:         "/forms/product",
			FieldsEndpoint: "/forms/product/fields",
			SubmitLabel:    m.T("submit"),
			Fields:         fields,
		},
		Rows:       BuildCatalogRows(models.Catalog()),
		SheetLabel: m.T("catalog_sheet"),
		SheetHref:  "/products/catalog.pdf",
	}
}
