package main

import (
	"fitbook/config"
	"fitbook/di"
	"fitbook/helper"
	"fitbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Fitbook API
// @version 1.0
// @description Schedule fitness classes and book slots in them.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
