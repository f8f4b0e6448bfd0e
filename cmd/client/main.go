package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/client"
	"github.com/MKhiriev/go-balance-keeper/internal/config"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/internal/store"
	"github.com/MKhiriev/go-balance-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-balance-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create server adapter")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(services, serverAdapter, buildInfo, filepath.Base(os.Args[0]), os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Err(err).Msg("client command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
