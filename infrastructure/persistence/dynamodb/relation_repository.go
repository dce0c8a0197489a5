package dynamodb

import (
	"context"
	"strconv"
	"time"

	"musclelog-backend/domain/workout"
	"musclelog-backend/infrastructure/config"
	apperrors "musclelog-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// RelationRepository persists follow edges. The table key is the
// composite (follower_name, id), so listing a follower's edges is a
// primary-key query and deletion needs both halves.
type RelationRepository struct {
	table  Table
	seq    *SequenceGenerator
	logger *zap.Logger
	now    func() time.Time
}

// NewRelationRepository creates a repository bound to the relation table
func NewRelationRepository(api API, cfg *config.Config, seq *SequenceGenerator, logger *zap.Logger) *RelationRepository {
	return &RelationRepository{
		table:  NewTable(api, cfg.RelationTable, logger),
		seq:    seq,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the repository clock. Tests use this to pin "now".
func (r *RelationRepository) WithClock(now func() time.Time) *RelationRepository {
	r.now = now
	return r
}

// Create persists a new follow edge with a generated id. Both names must
// be present; nothing is written otherwise. Duplicate edges and
// self-follows are not rejected.
func (r *RelationRepository) Create(ctx context.Context, followerName, followingName string) (workout.FollowRelation, error) {
	if followerName == "" || followingName == "" {
		return workout.FollowRelation{}, apperrors.NewValidationError("follower_name and following_name are required")
	}

	id, err := r.seq.Next(ctx, r.table.Name())
	if err != nil {
		return workout.FollowRelation{}, err
	}

	relation := workout.FollowRelation{
		ID:            id,
		FollowerName:  followerName,
		FollowingName: followingName,
		CreatedAt:     workout.EncodeTime(r.now()),
	}

	item, err := attributevalue.MarshalMap(relation)
	if err != nil {
		return workout.FollowRelation{}, apperrors.NewInternalError("marshaling relation").WithCause(err)
	}
	if err := r.table.Put(ctx, item); err != nil {
		return workout.FollowRelation{}, err
	}

	r.logger.Info("follow relation created",
		zap.Int64("id", relation.ID),
		zap.String("follower_name", followerName),
		zap.String("following_name", followingName),
	)
	return relation, nil
}

// Delete removes the edge keyed by (follower_name, id) and reports
// success. Both key halves must be present.
func (r *RelationRepository) Delete(ctx context.Context, followerName string, relationID int64) (bool, error) {
	if followerName == "" || relationID == 0 {
		return false, apperrors.NewValidationError("follower_name and relation id are required")
	}

	key := map[string]types.AttributeValue{
		"follower_name": &types.AttributeValueMemberS{Value: followerName},
		"id":            &types.AttributeValueMemberN{Value: strconv.FormatInt(relationID, 10)},
	}
	if err := r.table.Delete(ctx, key); err != nil {
		return false, err
	}

	r.logger.Info("follow relation deleted",
		zap.String("follower_name", followerName),
		zap.Int64("id", relationID),
	)
	return true, nil
}

// ListAll returns every follow edge in the table
func (r *RelationRepository) ListAll(ctx context.Context) ([]workout.FollowRelation, error) {
	items, err := r.table.Scan(ctx, nil)
	if err != nil {
		return nil, err
	}
	return unmarshalRelations(items)
}

// ListByFollower returns the edges where the given user is the follower
func (r *RelationRepository) ListByFollower(ctx context.Context, followerName string) ([]workout.FollowRelation, error) {
	if followerName == "" {
		return []workout.FollowRelation{}, nil
	}

	keyCond := expression.Key("follower_name").Equal(expression.Value(followerName))
	items, err := r.table.Query(ctx, keyCond)
	if err != nil {
		return nil, err
	}
	return unmarshalRelations(items)
}

func unmarshalRelations(items []map[string]types.AttributeValue) ([]workout.FollowRelation, error) {
	relations := make([]workout.FollowRelation, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &relations); err != nil {
		return nil, apperrors.NewInternalError("unmarshaling relations").WithCause(err)
	}
	return relations, nil
}
