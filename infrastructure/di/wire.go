//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"musclelog-backend/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDynamoDBClient,
	ProvideSequenceGenerator,
	ProvideSequencePort,
	ProvideTodoRepository,
	ProvideRelationRepository,
	ProvideVerifier,
	ProvideTodoService,
	ProvideRelationService,
	ProvideTimelineService,
	ProvideAnalyticsService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
