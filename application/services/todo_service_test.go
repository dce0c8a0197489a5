package services

import (
	"context"
	"testing"

	"musclelog-backend/domain/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTodoServiceCreateReturnsDisplayDates(t *testing.T) {
	repo := &stubTodoRepository{
		CreateFn: func(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error) {
			return workout.Todo{
				ID:        1,
				UserName:  draft.UserName,
				Name:      draft.Name,
				ClearPlan: "2026-09-05T00:00:00.000000",
				CreatedAt: "2026-08-30T14:30:45.123456",
				ClearDate: workout.ClearDateSentinel,
			}, nil
		},
	}
	svc := NewTodoService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), workout.TodoDraft{
		UserName: "alice", Name: "squat", ClearPlan: "2026-09-05",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-05", created.ClearPlan)
	assert.Equal(t, "2026-08-30", created.CreatedAt)
	assert.Equal(t, workout.ClearDateSentinel, created.ClearDate)
}

func TestTodoServiceOverviewSplitsByCompletion(t *testing.T) {
	repo := &stubTodoRepository{
		ListByUserFn: func(ctx context.Context, userName string) ([]workout.Todo, error) {
			assert.Equal(t, "alice", userName)
			return []workout.Todo{
				{ID: 1, Name: "squat", IsCleared: true,
					ClearPlan: "2026-08-25T00:00:00.000000",
					CreatedAt: "2026-08-20T10:00:00.000000",
					ClearDate: "2026-08-25T00:00:00.000000"},
				{ID: 2, Name: "bench", IsCleared: false,
					ClearPlan: "2026-09-01T00:00:00.000000",
					CreatedAt: "2026-08-28T10:00:00.000000",
					ClearDate: workout.ClearDateSentinel},
				{ID: 3, Name: "squat", IsCleared: true,
					ClearPlan: "2026-08-26T00:00:00.000000",
					CreatedAt: "2026-08-21T10:00:00.000000",
					ClearDate: "2026-08-26T00:00:00.000000"},
			}, nil
		},
	}
	svc := NewTodoService(repo, zap.NewNop())

	overview, err := svc.Overview(context.Background(), "alice")
	require.NoError(t, err)

	require.Len(t, overview.Complete, 2)
	require.Len(t, overview.NotComplete, 1)
	assert.Equal(t, int64(2), overview.NotComplete[0].ID)
	assert.Equal(t, "2026-09-01", overview.NotComplete[0].ClearPlan)

	assert.Equal(t, map[string]int{"squat": 2}, overview.Pie)
	assert.Equal(t, map[string]int{"2026-08-25": 1, "2026-08-26": 1}, overview.Line)
}

func TestTodoServiceOverviewEmpty(t *testing.T) {
	repo := &stubTodoRepository{
		ListByUserFn: func(ctx context.Context, userName string) ([]workout.Todo, error) {
			return []workout.Todo{}, nil
		},
	}
	svc := NewTodoService(repo, zap.NewNop())

	overview, err := svc.Overview(context.Background(), "alice")
	require.NoError(t, err)

	assert.NotNil(t, overview.Complete)
	assert.NotNil(t, overview.NotComplete)
	assert.Empty(t, overview.Complete)
	assert.Empty(t, overview.NotComplete)
}
