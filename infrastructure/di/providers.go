package di

import (
	"context"

	"musclelog-backend/application/ports"
	"musclelog-backend/application/services"
	"musclelog-backend/infrastructure/config"
	"musclelog-backend/infrastructure/persistence/dynamodb"
	"musclelog-backend/pkg/auth"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	TodoRepo     ports.TodoRepository
	RelationRepo ports.RelationRepository
	Sequence     ports.SequenceGenerator
	Verifier     auth.Verifier
	Todos        *services.TodoService
	Relations    *services.RelationService
	Timeline     *services.TimelineService
	Analytics    *services.AnalyticsService
}

// ProvideLogger creates the process logger
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDynamoDBClient connects to the table store
func ProvideDynamoDBClient(ctx context.Context, cfg *config.Config) (*awsdynamodb.Client, error) {
	return dynamodb.NewClient(ctx, cfg)
}

// ProvideSequenceGenerator creates the shared id counter
func ProvideSequenceGenerator(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) *dynamodb.SequenceGenerator {
	return dynamodb.NewSequenceGenerator(client, cfg.CounterTable, logger)
}

// ProvideSequencePort exposes the generator through its port
func ProvideSequencePort(seq *dynamodb.SequenceGenerator) ports.SequenceGenerator {
	return seq
}

// ProvideTodoRepository creates the todo repository
func ProvideTodoRepository(client *awsdynamodb.Client, cfg *config.Config, seq *dynamodb.SequenceGenerator, logger *zap.Logger) ports.TodoRepository {
	return dynamodb.NewTodoRepository(client, cfg, seq, logger)
}

// ProvideRelationRepository creates the follow-relation repository
func ProvideRelationRepository(client *awsdynamodb.Client, cfg *config.Config, seq *dynamodb.SequenceGenerator, logger *zap.Logger) ports.RelationRepository {
	return dynamodb.NewRelationRepository(client, cfg, seq, logger)
}

// ProvideVerifier creates the Cognito token verifier
func ProvideVerifier(cfg *config.Config) auth.Verifier {
	return auth.NewCognitoVerifier(cfg.CognitoIssuer, cfg.CognitoAudience)
}

// ProvideTodoService creates the todo service
func ProvideTodoService(todos ports.TodoRepository, logger *zap.Logger) *services.TodoService {
	return services.NewTodoService(todos, logger)
}

// ProvideRelationService creates the relation service
func ProvideRelationService(relations ports.RelationRepository, logger *zap.Logger) *services.RelationService {
	return services.NewRelationService(relations, logger)
}

// ProvideTimelineService creates the timeline service
func ProvideTimelineService(todos ports.TodoRepository, relations ports.RelationRepository, logger *zap.Logger) *services.TimelineService {
	return services.NewTimelineService(todos, relations, logger)
}

// ProvideAnalyticsService creates the analytics service
func ProvideAnalyticsService(todos ports.TodoRepository, logger *zap.Logger) *services.AnalyticsService {
	return services.NewAnalyticsService(todos, logger)
}
