package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiPrefix    = "/api/"
	registerPath = "/api/users/register"
	loginPath    = "/api/users/login"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.withSession)

	// exempt from the session check
	router.Get("/version", h.getServerVersion)
	router.Get("/health", h.health)

	// public API
	router.Post(registerPath, h.register)
	router.Post(loginPath, h.login)

	// protected API
	router.Post("/api/users/logout", h.logout)
	router.Get("/api/users/{id}", h.getUserSummary)
	router.Post("/api/transactions", h.createTransaction)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
