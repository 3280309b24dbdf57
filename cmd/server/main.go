package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gamegraph/internal/config"
	"gamegraph/internal/graph"
	"gamegraph/internal/logging"
	"gamegraph/internal/repository"
	"gamegraph/internal/server"
	"gamegraph/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	conn, err := connectGraph(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to connect to graph database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			logger.Warn("closing graph connection failed", "error", err)
		}
	}()

	games := repository.NewGameRepository(conn, logger)
	players := repository.NewPlayerRepository(conn, logger)
	developers := repository.NewDeveloperRepository(conn, logger)
	relationships := repository.NewRelationshipRepository(conn, logger)
	schema := repository.NewSchemaRepository(conn, logger)

	if err := schema.EnsureConstraints(ctx); err != nil {
		logger.Error("failed to apply uniqueness constraints", "error", err)
		os.Exit(1)
	}
	if err := schema.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to apply indexes", "error", err)
		os.Exit(1)
	}

	gameService := service.NewGameService(games, developers, relationships, logger)
	playerService := service.NewPlayerService(players, games, relationships, logger)
	analyticsService := service.NewAnalyticsService(games, players, developers, logger)

	apiHandlers := server.NewAPIHandlers(logger, gameService, playerService, analyticsService)

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.GraphHealthService{Client: conn},
		API:              apiHandlers,
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowCredentials: cfg.HTTP.AllowCredentials,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func connectGraph(ctx context.Context, logger *slog.Logger, cfg config.Config) (*graph.Connection, error) {
	if cfg.Neo4j.URI == "" {
		return nil, graph.ErrMissingURI
	}

	conn := graph.NewConnection(graph.Options{
		URI:            cfg.Neo4j.URI,
		Database:       cfg.Neo4j.Database,
		Username:       cfg.Neo4j.Username,
		Password:       cfg.Neo4j.Password,
		MaxConnections: cfg.Neo4j.MaxConnections,
	}, logger)

	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}
	return conn, nil
}
