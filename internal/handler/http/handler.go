package http

import (
	"time"

	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookie marks the session cookie Secure.
	secureCookie bool

	// requestTimeout bounds a single request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		secureCookie:   cfg.App.SecureCookie,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
