// Package grpc exposes the standard gRPC health service for the ledger.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
)

// LedgerServiceName is the service name reported by the health endpoint.
const LedgerServiceName = "balance.v1.Ledger"

// Handler is the root gRPC transport handler. It owns the health server
// and is shared by the gRPC server for its whole lifetime.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a Handler whose health server reports both the overall
// server and LedgerServiceName as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(LedgerServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING so clients stop routing to
// this instance before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Version returns the running server version.
func (h *Handler) Version(ctx context.Context) string {
	if h.services == nil || h.services.AppInfoService == nil {
		return ""
	}
	return h.services.AppInfoService.GetAppVersion(ctx)
}
