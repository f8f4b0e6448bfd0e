package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-balance-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-balance-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
)

type grpcServer struct {
	handler  *myGRPC.Handler
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, listenError("gRPC", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:  handler,
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) Name() string   { return "gRPC" }
func (g *grpcServer) Addr() net.Addr { return g.listener.Addr() }
func (g *grpcServer) Close() error   { return g.listener.Close() }

// Serve returns nil after GracefulStop.
func (g *grpcServer) Serve() error {
	return g.server.Serve(g.listener)
}

// Shutdown flips health to NOT_SERVING before draining.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}
