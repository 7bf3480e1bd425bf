package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviehub/httpserver"
	"moviehub/mongodb"
	"moviehub/movie"
	"moviehub/neo4j"
	"moviehub/pkg/config"
	"moviehub/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.NewConnection(ctx, mongodb.Options{
		URI:    cfg.Mongo.URI,
		DBName: cfg.Mongo.DBName,
	})
	if err != nil {
		slog.Error("Cannot open mongodb connection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongodb.Close(context.Background(), db); err != nil {
			slog.Error("Cannot close mongodb connection", "error", err)
		}
	}()

	graph, err := neo4j.NewDriver(ctx, neo4j.Options{
		URI:      cfg.Neo4j.URI,
		User:     cfg.Neo4j.User,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		slog.Error("Cannot open neo4j driver", "error", err)
		sentry.Error(err)
		os.Exit(1)
	}
	defer func() {
		if err := graph.Close(context.Background()); err != nil {
			slog.Error("Cannot close neo4j driver", "error", err)
		}
	}()

	movieService := movie.NewUsecase(
		mongodb.NewMovieRepository(db, cfg.Mongo.Collection),
		neo4j.NewMovieRepository(graph, cfg.Neo4j.Database),
	)
	server := httpserver.Default(cfg,
		httpserver.WithLogger(logger),
		httpserver.WithMovieService(movieService),
	)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started!", "addr", server.Addr)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			sentry.Error(err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}
}
