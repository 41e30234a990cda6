// Package api implements the manweb HTTP surface using chi.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a chi router binding the two URL shapes: bare-name
// resolution and the section-qualified render pipeline.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	r.Get("/{name}", h.Find)
	r.Get("/{section}/{name}", h.Render)

	return r
}
