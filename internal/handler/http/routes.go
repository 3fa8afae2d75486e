package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/sync/{collection}", h.pull)
		r.Put("/api/sync/{collection}/{id}", h.push)
		r.Delete("/api/sync/{collection}/{id}", h.delete)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
