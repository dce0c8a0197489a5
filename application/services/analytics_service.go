package services

import (
	"context"

	"musclelog-backend/application/ports"
	"musclelog-backend/domain/workout"

	"go.uber.org/zap"
)

// MenuTrends is the per-menu analysis payload: weight and set-count
// series over the menu's completion dates.
type MenuTrends struct {
	Weight []workout.TrendPoint `json:"weight"`
	Set    []workout.TrendPoint `json:"set"`
}

// AnalyticsService derives chart and trend data from completed todos
type AnalyticsService struct {
	todos  ports.TodoRepository
	logger *zap.Logger
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(todos ports.TodoRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{todos: todos, logger: logger}
}

// MenuTrends analyzes one user's history for a single training menu
func (s *AnalyticsService) MenuTrends(ctx context.Context, userName, menuName string) (MenuTrends, error) {
	history, err := s.todos.ListByUserAndMenu(ctx, userName, menuName)
	if err != nil {
		return MenuTrends{}, err
	}

	trends := MenuTrends{
		Weight: workout.TrendSeries(history, func(t workout.Todo) float64 { return float64(t.Weight) }),
		Set:    workout.TrendSeries(history, func(t workout.Todo) float64 { return float64(t.Set) }),
	}

	s.logger.Debug("menu trends built",
		zap.String("user_name", userName),
		zap.String("menu", menuName),
		zap.Int("samples", len(history)),
	)
	return trends, nil
}

// UserChart aggregates a user's full completion history into the public
// pie and line chart counts.
func (s *AnalyticsService) UserChart(ctx context.Context, userName string) (workout.ChartData, error) {
	completed, err := s.todos.ListCompletedByUser(ctx, userName)
	if err != nil {
		return workout.ChartData{}, err
	}
	return workout.BuildChartData(completed), nil
}
