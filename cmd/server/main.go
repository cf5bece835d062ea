package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parths19/Admin-Dashboard/internal/adapters"
	httpadapter "github.com/parths19/Admin-Dashboard/internal/adapters/primary/http"
	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/persistence"
	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/parths19/Admin-Dashboard/internal/core"
	"github.com/rs/zerolog"
	do "github.com/samber/do/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	injector := do.New(
		config.Package,
		core.Package,
		adapters.SecondaryPackage,
		adapters.PrimaryPackage,
	)

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if l, err := do.Invoke[zerolog.Logger](injector); err == nil {
		logger = l
	}

	server, err := do.Invoke[*httpadapter.Server](injector)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create HTTP server")
	}

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	if storage, err := do.Invoke[persistence.Storage](injector); err == nil {
		closeQuietly(logger, storage)
	}
}

func closeQuietly(logger zerolog.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close session storage")
	}
}
