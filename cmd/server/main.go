package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-prompt-keeper/internal/config"
	"github.com/MKhiriev/go-prompt-keeper/internal/handler"
	"github.com/MKhiriev/go-prompt-keeper/internal/logger"
	"github.com/MKhiriev/go-prompt-keeper/internal/server"
	"github.com/MKhiriev/go-prompt-keeper/internal/service"
	"github.com/MKhiriev/go-prompt-keeper/internal/store"
	"github.com/MKhiriev/go-prompt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("prompt-keeper-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
