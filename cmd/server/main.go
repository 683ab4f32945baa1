// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/handler"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/server"
	"github.com/sms-platform/authgate/internal/service"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/migrations"
	"github.com/sms-platform/authgate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("authgate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.App, log)

	if cfg.App.SeedAdmin {
		if err = seedAdmin(ctx, services.ProvisionService, cfg.App, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding admin account")
		}
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

// seedAdmin provisions the bootstrap ADMIN account on first startup. An
// existing "admin" account makes this a no-op.
func seedAdmin(ctx context.Context, provision service.ProvisionService, cfg config.App, log *logger.Logger) error {
	_, err := provision.FindByAccount(ctx, "admin")
	if err == nil {
		log.Debug().Msg("admin account already present")
		return nil
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		return err
	}

	created, err := provision.CreateAccount(ctx, models.CreateAccountRequest{
		Identifier: "admin",
		Account:    "admin",
		Password:   cfg.AdminPassword,
		Role:       string(models.RoleAdmin),
	})
	if err != nil {
		return err
	}

	log.Info().Str("identifier", created.Identifier).Msg("admin account seeded")
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
