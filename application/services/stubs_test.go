package services

import (
	"context"

	"musclelog-backend/domain/workout"
)

// stubTodoRepository implements ports.TodoRepository with function
// fields so each test scripts only the calls it cares about.
type stubTodoRepository struct {
	CreateFn              func(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error)
	UpdateFn              func(ctx context.Context, patch workout.TodoPatch) (workout.Todo, error)
	CompleteFn            func(ctx context.Context, id int64, clearDate, comment string) (workout.TodoCompletion, error)
	ListByUserFn          func(ctx context.Context, userName string) ([]workout.Todo, error)
	ListCompletedSinceFn  func(ctx context.Context, agoDays int) ([]workout.Todo, error)
	ListCompletedByUserFn func(ctx context.Context, userName string) ([]workout.Todo, error)
	ListByUserAndMenuFn   func(ctx context.Context, userName, menuName string) ([]workout.Todo, error)
}

func (s *stubTodoRepository) Create(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error) {
	return s.CreateFn(ctx, draft)
}

func (s *stubTodoRepository) Update(ctx context.Context, patch workout.TodoPatch) (workout.Todo, error) {
	return s.UpdateFn(ctx, patch)
}

func (s *stubTodoRepository) Complete(ctx context.Context, id int64, clearDate, comment string) (workout.TodoCompletion, error) {
	return s.CompleteFn(ctx, id, clearDate, comment)
}

func (s *stubTodoRepository) ListByUser(ctx context.Context, userName string) ([]workout.Todo, error) {
	return s.ListByUserFn(ctx, userName)
}

func (s *stubTodoRepository) ListCompletedSince(ctx context.Context, agoDays int) ([]workout.Todo, error) {
	return s.ListCompletedSinceFn(ctx, agoDays)
}

func (s *stubTodoRepository) ListCompletedByUser(ctx context.Context, userName string) ([]workout.Todo, error) {
	return s.ListCompletedByUserFn(ctx, userName)
}

func (s *stubTodoRepository) ListByUserAndMenu(ctx context.Context, userName, menuName string) ([]workout.Todo, error) {
	return s.ListByUserAndMenuFn(ctx, userName, menuName)
}

// stubRelationRepository implements ports.RelationRepository.
type stubRelationRepository struct {
	CreateFn         func(ctx context.Context, followerName, followingName string) (workout.FollowRelation, error)
	DeleteFn         func(ctx context.Context, followerName string, relationID int64) (bool, error)
	ListAllFn        func(ctx context.Context) ([]workout.FollowRelation, error)
	ListByFollowerFn func(ctx context.Context, followerName string) ([]workout.FollowRelation, error)
}

func (s *stubRelationRepository) Create(ctx context.Context, followerName, followingName string) (workout.FollowRelation, error) {
	return s.CreateFn(ctx, followerName, followingName)
}

func (s *stubRelationRepository) Delete(ctx context.Context, followerName string, relationID int64) (bool, error) {
	return s.DeleteFn(ctx, followerName, relationID)
}

func (s *stubRelationRepository) ListAll(ctx context.Context) ([]workout.FollowRelation, error) {
	return s.ListAllFn(ctx)
}

func (s *stubRelationRepository) ListByFollower(ctx context.Context, followerName string) ([]workout.FollowRelation, error) {
	return s.ListByFollowerFn(ctx, followerName)
}
