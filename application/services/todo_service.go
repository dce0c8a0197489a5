// Package services holds the application services the HTTP handlers
// call. Each service composes repository operations and shapes rows for
// the response; input-shape validation happens at the handler edge.
package services

import (
	"context"

	"musclelog-backend/application/ports"
	"musclelog-backend/domain/workout"

	"go.uber.org/zap"
)

// TodosOverview is the per-user listing split into active and completed
// items, with the top-page chart data derived from the completed ones.
type TodosOverview struct {
	NotComplete []workout.Todo `json:"not_complete"`
	Complete    []workout.Todo `json:"complete"`
	Pie         map[string]int `json:"pie"`
	Line        map[string]int `json:"line"`
}

// TodoService exposes the todo lifecycle to the handlers
type TodoService struct {
	todos  ports.TodoRepository
	logger *zap.Logger
}

// NewTodoService creates a todo service
func NewTodoService(todos ports.TodoRepository, logger *zap.Logger) *TodoService {
	return &TodoService{todos: todos, logger: logger}
}

// Create registers a new todo and returns it with display-formatted dates
func (s *TodoService) Create(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error) {
	todo, err := s.todos.Create(ctx, draft)
	if err != nil {
		return workout.Todo{}, err
	}
	return todo.Display(), nil
}

// Update modifies an active todo's plan, name, weight and set count
func (s *TodoService) Update(ctx context.Context, patch workout.TodoPatch) (workout.Todo, error) {
	return s.todos.Update(ctx, patch)
}

// Complete marks a todo cleared and returns the store's post-update attributes
func (s *TodoService) Complete(ctx context.Context, id int64, clearDate, comment string) (workout.TodoCompletion, error) {
	return s.todos.Complete(ctx, id, clearDate, comment)
}

// Overview lists the user's recent todos split by completion state and
// builds the chart aggregates from the completed ones.
func (s *TodoService) Overview(ctx context.Context, userName string) (TodosOverview, error) {
	todos, err := s.todos.ListByUser(ctx, userName)
	if err != nil {
		return TodosOverview{}, err
	}

	overview := TodosOverview{
		NotComplete: []workout.Todo{},
		Complete:    []workout.Todo{},
	}
	for _, t := range todos {
		if t.IsCleared {
			overview.Complete = append(overview.Complete, t.Display())
		} else {
			overview.NotComplete = append(overview.NotComplete, t.Display())
		}
	}

	completed := make([]workout.Todo, 0, len(overview.Complete))
	for _, t := range todos {
		if t.IsCleared {
			completed = append(completed, t)
		}
	}
	chart := workout.BuildChartData(completed)
	overview.Pie = chart.Pie
	overview.Line = chart.Line

	s.logger.Debug("todos overview built",
		zap.String("user_name", userName),
		zap.Int("complete", len(overview.Complete)),
		zap.Int("not_complete", len(overview.NotComplete)),
	)
	return overview, nil
}
