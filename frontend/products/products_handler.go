package products

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sessioncontext "companysite/frontend/shared/context"
	"companysite/frontend/shared/forms"
	"companysite/frontend/shared/html"
	"companysite/infrastructure/viewstate"
	"companysite/models"
)

var productForm = forms.Binding{
	Name:   "product",
	Fields: models.ProductFormFields(),
	Set: func(c *viewstate.Controller, name, value string) error {
		return c.SetProductField(name, value)
	},
	Submit: func(ctx context.Context, c *viewstate.Controller) error {
		return c.SubmitProductForm(ctx)
	},
}

func UpdateProductFieldCommandHandler() http.HandlerFunc {
	return forms.FieldCommandHandler(productForm)
}

func SubmitProductFormCommandHandler(render html.PageRenderer) http.HandlerFunc {
	return forms.SubmitCommandHandler(productForm, render)
}

func CatalogSheetQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := sessioncontext.GetMessagesFromContext(r.Context())
		pdfBytes, err := RenderCatalogPDF(models.Catalog(), m.T("products_title"), time.Now())
		if err != nil {
			slog.Error("render catalog sheet failed", slog.Any("err", err))
			http.Error(w, "failed to build catalog pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=catalog.pdf")
		_, _ = w.Write(pdfBytes)
	}
}
