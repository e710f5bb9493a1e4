// Package mockrouter is an in-memory stand-in for the serverless certificate
// backend. It serves the router action protocol, the privileged admin
// surface, and short-lived signed object URLs so the console can be
// developed and demoed without the real backend.
package mockrouter

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/certdesk/certdesk/internal/logger"
)

type Handler struct {
	store  *memoryStore
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("mock router handler created")
	return &Handler{
		store:  newMemoryStore(),
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLogger)
	router.Use(h.withLogging)

	// the single action endpoint plus signed object downloads
	router.Group(func(r chi.Router) {
		r.Post("/router", h.routerAction)
		r.Get("/objects/{objectID}", h.object)
	})

	// the privileged REST-ish admin surface
	router.Group(func(r chi.Router) {
		r.Use(h.withAdminAuth)
		r.Post("/admin/certificates/resend", h.adminResend)
		r.Put("/admin/learners/{email}", h.adminUpdateLearner)
	})

	return router
}
