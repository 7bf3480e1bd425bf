package main

import (
	"context"
	"log/slog"
	"os"

	"moviehub/mongodb"
	"moviehub/neo4j"
	"moviehub/pkg/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := mongodb.NewConnection(ctx, mongodb.Options{
		URI:    cfg.Mongo.URI,
		DBName: cfg.Mongo.DBName,
	})
	if err != nil {
		logger.Error("cannot connecting to mongodb", "error", err)
		os.Exit(1)
	}
	defer func() { _ = mongodb.Close(ctx, db) }()

	name, err := mongodb.NewMovieRepository(db, cfg.Mongo.Collection).EnsureIndexes(ctx)
	if err != nil {
		logger.Error("cannot create mongodb index", "error", err)
		os.Exit(1)
	}
	logger.Info("mongodb index ready", "index", name)

	graph, err := neo4j.NewDriver(ctx, neo4j.Options{
		URI:      cfg.Neo4j.URI,
		User:     cfg.Neo4j.User,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		logger.Error("cannot connecting to neo4j", "error", err)
		os.Exit(1)
	}
	defer func() { _ = graph.Close(ctx) }()

	if err := neo4j.NewMovieRepository(graph, cfg.Neo4j.Database).EnsureIndexes(ctx); err != nil {
		logger.Error("cannot create neo4j indexes", "error", err)
		os.Exit(1)
	}

	logger.Info("applied indexes", "total", len(neo4j.Indexes)+1)
}
