// Package ports declares the interfaces the application services depend
// on. The DynamoDB implementations live in infrastructure/persistence.
package ports

import (
	"context"

	"musclelog-backend/domain/workout"
)

// TodoRepository is the persistence boundary for training todo items
type TodoRepository interface {
	Create(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error)
	Update(ctx context.Context, patch workout.TodoPatch) (workout.Todo, error)
	Complete(ctx context.Context, id int64, clearDate, comment string) (workout.TodoCompletion, error)
	ListByUser(ctx context.Context, userName string) ([]workout.Todo, error)
	ListCompletedSince(ctx context.Context, agoDays int) ([]workout.Todo, error)
	ListCompletedByUser(ctx context.Context, userName string) ([]workout.Todo, error)
	ListByUserAndMenu(ctx context.Context, userName, menuName string) ([]workout.Todo, error)
}

// RelationRepository is the persistence boundary for follow edges
type RelationRepository interface {
	Create(ctx context.Context, followerName, followingName string) (workout.FollowRelation, error)
	Delete(ctx context.Context, followerName string, relationID int64) (bool, error)
	ListAll(ctx context.Context) ([]workout.FollowRelation, error)
	ListByFollower(ctx context.Context, followerName string) ([]workout.FollowRelation, error)
}

// SequenceGenerator assigns monotonically increasing ids per logical table
type SequenceGenerator interface {
	Next(ctx context.Context, logicalTable string) (int64, error)
}
