package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/Tyrowin/roomrelay/internal/logx"
	"github.com/Tyrowin/roomrelay/internal/room"
	"github.com/Tyrowin/roomrelay/internal/server"
)

func main() {
	config, cfgErr := server.LoadConfig()

	logger := logx.New(logx.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
		Out:    os.Stdout,
	})
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("Config file ignored")
	}

	registry := room.NewRegistry()
	hub := server.NewHub(registry, logger, config.SendBuffer)

	handler := server.SetupRoutes(hub, config, logger)
	httpServer := server.CreateServer(config.Addr(), handler)

	ln, err := server.Listen(httpServer)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", httpServer.Addr).Msg("Failed to bind")
	}
	logger.Info().Str("addr", ln.Addr().String()).Msg("roomrelay listening")

	go func() {
		if err := server.StartServer(httpServer, ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server stopped")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		config.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return server.ShutdownServer(ctx, httpServer)
			},
			"hub": func(ctx context.Context) error {
				return hub.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info().Int("code", exitCode).Msg("roomrelay exited")
	os.Exit(exitCode)
}
