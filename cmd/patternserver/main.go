package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/antennalabs/patterncmp/internal/compareapi"
	"github.com/antennalabs/patterncmp/internal/config"
	"github.com/antennalabs/patterncmp/internal/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting pattern comparison server...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	server := compareapi.NewServer(&compareapi.ServerConfig{
		Host:      cfg.Address,
		Port:      cfg.Port,
		BodyLimit: cfg.BodySizeLimit,
	})

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("shutdown signal received, stopping server")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown with error")
	}
	log.Info().Msg("server stopped")
}
