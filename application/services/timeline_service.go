package services

import (
	"context"
	"sort"

	"musclelog-backend/application/ports"
	"musclelog-backend/domain/workout"

	"go.uber.org/zap"
)

// timelineWindowDays is how far back the social timeline reaches
const timelineWindowDays = 14

// TimelineService assembles the social timeline: recently completed
// todos of the users the caller follows, newest first.
type TimelineService struct {
	todos     ports.TodoRepository
	relations ports.RelationRepository
	logger    *zap.Logger
}

// NewTimelineService creates a timeline service
func NewTimelineService(todos ports.TodoRepository, relations ports.RelationRepository, logger *zap.Logger) *TimelineService {
	return &TimelineService{todos: todos, relations: relations, logger: logger}
}

// Timeline returns the completed todos of the caller's followed users
// from the trailing two weeks, display-formatted and ordered by clear
// date descending.
func (s *TimelineService) Timeline(ctx context.Context, userName string) ([]workout.Todo, error) {
	recent, err := s.todos.ListCompletedSince(ctx, -timelineWindowDays)
	if err != nil {
		return nil, err
	}
	following, err := s.relations.ListByFollower(ctx, userName)
	if err != nil {
		return nil, err
	}

	followed := make(map[string]bool, len(following))
	for _, rel := range following {
		followed[rel.FollowingName] = true
	}

	entries := make([]workout.Todo, 0, len(recent))
	for _, t := range recent {
		if followed[t.UserName] {
			entries = append(entries, t)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ClearDate > entries[j].ClearDate
	})

	for i := range entries {
		entries[i] = entries[i].Display()
	}

	s.logger.Debug("timeline assembled",
		zap.String("user_name", userName),
		zap.Int("following", len(following)),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}
