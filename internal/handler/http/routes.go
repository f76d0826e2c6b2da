package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/api/account/register", h.register)
		r.Post("/api/account/login", h.login)

		r.Get("/api/progression/{username}", h.getProgression)
		r.Get("/api/leaderboard", h.getLeaderboard)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes acting on the account of the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/game/save", h.saveGame)
		r.Get("/api/game/load", h.loadGame)
		r.Post("/api/progression", h.pushProgression)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
