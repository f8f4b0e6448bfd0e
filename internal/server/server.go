package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/handler"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
)

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer binds a listener for every configured transport. If any bind
// fails the listeners opened so far are released.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, httpSrv)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Name()).Msg("shutting down")
		t.Shutdown()
	}
}

// run serves until ctx is done, then shuts every transport down and waits
// for their Serve calls to return.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		go func(t transport) {
			defer wg.Done()
			s.logger.Info().Str("transport", t.Name()).Str("address", t.Addr().String()).Msg("listening")
			if err := t.Serve(); err != nil {
				s.logger.Err(err).Str("transport", t.Name()).Msg("serve failed")
			}
		}(t)
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) closeListeners() {
	for _, t := range s.transports {
		if err := t.Close(); err != nil {
			s.logger.Err(err).Str("transport", t.Name()).Msg("closing listener")
		}
	}
}
