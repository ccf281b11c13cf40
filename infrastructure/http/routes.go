package http

import (
	"companysite/frontend/about"
	"companysite/frontend/products"
	"companysite/frontend/site"

	"github.com/go-chi/chi/v5"
)

// RegisterSiteRoutes registers the page and navigation routes.
func (s *Server) RegisterSiteRoutes(r chi.Router) chi.Router {
	r.Get("/", site.SitePageQueryHandler())
	r.Post("/navigate", site.NavigateCommandHandler())
	return r
}

// RegisterFormRoutes registers the field-edit and submit routes of both forms.
func (s *Server) RegisterFormRoutes(r chi.Router) chi.Router {
	r.Post("/forms/product/fields", products.UpdateProductFieldCommandHandler())
	r.Post("/forms/product", products.SubmitProductFormCommandHandler(site.RenderPage))

	r.Post("/forms/about/fields", about.UpdateAboutFieldCommandHandler())
	r.Post("/forms/about", about.SubmitAboutFormCommandHandler(site.RenderPage))
	return r
}
