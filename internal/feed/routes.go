package feed

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds a signing request body; params of real requests are
// a few kilobytes at most.
const maxBodyBytes = 64 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RequestSize(maxBodyBytes), h.withTraceID, h.withLogging)

	router.With(h.checkHash).Post("/api/sign", h.sign)

	return router
}
