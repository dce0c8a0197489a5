package services

import (
	"context"

	"musclelog-backend/application/ports"
	"musclelog-backend/domain/workout"

	"go.uber.org/zap"
)

// RelationService exposes the follow graph to the handlers
type RelationService struct {
	relations ports.RelationRepository
	logger    *zap.Logger
}

// NewRelationService creates a relation service
func NewRelationService(relations ports.RelationRepository, logger *zap.Logger) *RelationService {
	return &RelationService{relations: relations, logger: logger}
}

// Follow records that follower starts following the named user
func (s *RelationService) Follow(ctx context.Context, followerName, followingName string) (workout.FollowRelation, error) {
	return s.relations.Create(ctx, followerName, followingName)
}

// Unfollow removes the edge identified by the follower and relation id
func (s *RelationService) Unfollow(ctx context.Context, followerName string, relationID int64) (bool, error) {
	return s.relations.Delete(ctx, followerName, relationID)
}

// ListFollowing returns every edge where the given user is the follower
func (s *RelationService) ListFollowing(ctx context.Context, followerName string) ([]workout.FollowRelation, error) {
	return s.relations.ListByFollower(ctx, followerName)
}
