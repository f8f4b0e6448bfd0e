package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-balance-keeper/internal/utils"
)

// UnaryLogging logs every unary call with its method, duration and status
// code. The per-call logger carries a trace_id and is attached to ctx.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l := h.logger.With().Str("trace_id", utils.NewUUIDGenerator().Generate()).Logger()
	ctx = l.WithContext(ctx)

	resp, err := next(ctx, req)

	event := l.Info()
	if err != nil {
		event = l.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Str("version", h.Version(ctx)).
		Send()

	return resp, err
}
