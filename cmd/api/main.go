// Package main runs the API as a plain HTTP server for local
// development, typically against a dynamodb-local endpoint.
package main

import (
	"context"
	"log"
	"net/http"

	"musclelog-backend/infrastructure/config"
	"musclelog-backend/infrastructure/di"
	"musclelog-backend/interfaces/http/rest"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	router := rest.NewRouter(
		container.Todos,
		container.Relations,
		container.Timeline,
		container.Analytics,
		container.Verifier,
		container.Logger,
	)

	container.Logger.Info("starting server",
		zap.String("address", cfg.ServerAddress),
		zap.String("environment", cfg.Environment),
		zap.Bool("local_store", cfg.IsLocalStore()),
	)
	if err := http.ListenAndServe(cfg.ServerAddress, router.Setup()); err != nil {
		container.Logger.Fatal("server stopped", zap.Error(err))
	}
}
