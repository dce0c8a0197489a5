package services

import (
	"context"
	"testing"

	"musclelog-backend/domain/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyticsServiceMenuTrends(t *testing.T) {
	todos := &stubTodoRepository{
		ListByUserAndMenuFn: func(ctx context.Context, userName, menuName string) ([]workout.Todo, error) {
			assert.Equal(t, "alice", userName)
			assert.Equal(t, "squat", menuName)
			return []workout.Todo{
				{Name: "squat", Weight: 80, Set: 5, IsCleared: true,
					ClearDate: "2026-08-27T00:00:00.000000"},
				{Name: "squat", Weight: 90, Set: 3, IsCleared: true,
					ClearDate: "2026-08-29T00:00:00.000000"},
			}, nil
		},
	}
	svc := NewAnalyticsService(todos, zap.NewNop())

	trends, err := svc.MenuTrends(context.Background(), "alice", "squat")
	require.NoError(t, err)

	require.Len(t, trends.Weight, 2)
	assert.Equal(t, 80.0, trends.Weight[0].Value)
	assert.Equal(t, 90.0, trends.Weight[1].Value)
	assert.Equal(t, 85.0, trends.Weight[1].Average)

	require.Len(t, trends.Set, 2)
	assert.Equal(t, 5.0, trends.Set[0].Value)
	assert.Equal(t, 4.0, trends.Set[1].Average)
}

func TestAnalyticsServiceUserChart(t *testing.T) {
	todos := &stubTodoRepository{
		ListCompletedByUserFn: func(ctx context.Context, userName string) ([]workout.Todo, error) {
			assert.Equal(t, "alice", userName)
			return []workout.Todo{
				{Name: "squat", IsCleared: true, ClearDate: "2026-08-28T00:00:00.000000"},
				{Name: "squat", IsCleared: true, ClearDate: "2026-08-29T00:00:00.000000"},
			}, nil
		},
	}
	svc := NewAnalyticsService(todos, zap.NewNop())

	chart, err := svc.UserChart(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"squat": 2}, chart.Pie)
	assert.Equal(t, map[string]int{"2026-08-28": 1, "2026-08-29": 1}, chart.Line)
}
