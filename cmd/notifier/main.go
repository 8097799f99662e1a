package main

import (
	"context"
	"fitbook/config"
	"fitbook/di"
	"fitbook/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled, the notifier has nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeNotifier()

	log.Info().Msg("Notifier started.")

	worker.Run(ctx)

	if err := worker.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close notifier")
	}

	log.Info().Msg("Notifier stopped.")
}
