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

// listWindowDays caps per-user listings to the trailing month. This is a
// recency cut, not pagination.
const listWindowDays = 30

// TodoRepository persists todo items in the Todos table. Ids come from
// the shared sequence counter scoped to the table name.
type TodoRepository struct {
	table     Table
	seq       *SequenceGenerator
	userIndex string
	logger    *zap.Logger
	now       func() time.Time
}

// NewTodoRepository creates a repository bound to the configured tables
func NewTodoRepository(api API, cfg *config.Config, seq *SequenceGenerator, logger *zap.Logger) *TodoRepository {
	return &TodoRepository{
		table:     NewTable(api, cfg.TodoTable, logger),
		seq:       seq,
		userIndex: cfg.UserCreatedIndex,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the repository clock. Tests use this to pin "now".
func (r *TodoRepository) WithClock(now func() time.Time) *TodoRepository {
	r.now = now
	return r
}

// Create assigns the next sequence id, stamps creation time and the
// uncleared defaults, and persists the item. The stored representation
// is returned.
func (r *TodoRepository) Create(ctx context.Context, draft workout.TodoDraft) (workout.Todo, error) {
	plan, err := workout.EncodeDate(draft.ClearPlan)
	if err != nil {
		return workout.Todo{}, err
	}

	id, err := r.seq.Next(ctx, r.table.Name())
	if err != nil {
		return workout.Todo{}, err
	}

	todo := workout.Todo{
		ID:        id,
		UserName:  draft.UserName,
		Name:      draft.Name,
		Weight:    draft.Weight,
		Set:       draft.Set,
		ClearPlan: plan,
		CreatedAt: workout.EncodeTime(r.now()),
		IsCleared: false,
		ClearDate: workout.ClearDateSentinel,
	}

	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return workout.Todo{}, apperrors.NewInternalError("marshaling todo").WithCause(err)
	}
	if err := r.table.Put(ctx, item); err != nil {
		return workout.Todo{}, err
	}

	r.logger.Info("todo created",
		zap.Int64("id", todo.ID),
		zap.String("user_name", todo.UserName),
		zap.String("name", todo.Name),
	)
	return todo, nil
}

// Update replaces the plan, name, weight and set count of an active
// item. Completion state is untouched. The returned todo carries the
// post-update values with clear_plan reshaped to YYYY-MM-DD for display.
func (r *TodoRepository) Update(ctx context.Context, patch workout.TodoPatch) (workout.Todo, error) {
	plan, err := workout.EncodeDate(patch.ClearPlan)
	if err != nil {
		return workout.Todo{}, err
	}

	update := expression.
		Set(expression.Name("clear_plan"), expression.Value(plan)).
		Set(expression.Name("name"), expression.Value(patch.Name)).
		Set(expression.Name("weight"), expression.Value(patch.Weight)).
		Set(expression.Name("set"), expression.Value(patch.Set))

	attrs, err := r.table.Update(ctx, todoKey(patch.ID), update)
	if err != nil {
		return workout.Todo{}, err
	}
	if len(attrs) == 0 {
		return workout.Todo{}, apperrors.NewNotFoundError("todo")
	}

	var updated workout.Todo
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return workout.Todo{}, apperrors.NewInternalError("unmarshaling updated todo").WithCause(err)
	}
	updated.ID = patch.ID
	if display, err := workout.DecodeDate(updated.ClearPlan); err == nil {
		updated.ClearPlan = display
	}

	r.logger.Info("todo updated", zap.Int64("id", patch.ID))
	return updated, nil
}

// Complete marks an item cleared with its completion date and comment,
// returning the store's post-update attributes. The store overwrites on
// re-invocation; calling it once per item is the caller's concern.
func (r *TodoRepository) Complete(ctx context.Context, id int64, clearDate, comment string) (workout.TodoCompletion, error) {
	encoded, err := workout.EncodeDate(clearDate)
	if err != nil {
		return workout.TodoCompletion{}, err
	}

	update := expression.
		Set(expression.Name("is_cleared"), expression.Value(true)).
		Set(expression.Name("clear_date"), expression.Value(encoded)).
		Set(expression.Name("comment"), expression.Value(comment))

	attrs, err := r.table.Update(ctx, todoKey(id), update)
	if err != nil {
		return workout.TodoCompletion{}, err
	}
	if len(attrs) == 0 {
		return workout.TodoCompletion{}, apperrors.NewNotFoundError("todo")
	}

	var completion workout.TodoCompletion
	if err := attributevalue.UnmarshalMap(attrs, &completion); err != nil {
		return workout.TodoCompletion{}, apperrors.NewInternalError("unmarshaling completion").WithCause(err)
	}

	r.logger.Info("todo completed", zap.Int64("id", id), zap.String("clear_date", completion.ClearDate))
	return completion, nil
}

// ListByUser returns the user's items created within the trailing 30
// days, via the (user_name, created_at) index. An empty user name yields
// an empty list rather than an error.
func (r *TodoRepository) ListByUser(ctx context.Context, userName string) ([]workout.Todo, error) {
	if userName == "" {
		return []workout.Todo{}, nil
	}

	since := workout.EncodeTime(r.now().AddDate(0, 0, -listWindowDays))
	keyCond := expression.
		Key("user_name").Equal(expression.Value(userName)).
		And(expression.Key("created_at").GreaterThanEqual(expression.Value(since)))

	items, err := r.table.QueryIndex(ctx, r.userIndex, keyCond, nil)
	if err != nil {
		return nil, err
	}
	return unmarshalTodos(items)
}

// ListCompletedSince returns items across all users whose clear_date is
// on or after now+agoDays (agoDays is negative for "N days ago"). The
// sentinel sorts below every real timestamp, so uncompleted items never
// match.
func (r *TodoRepository) ListCompletedSince(ctx context.Context, agoDays int) ([]workout.Todo, error) {
	since := workout.EncodeTime(r.now().AddDate(0, 0, agoDays))
	filter := expression.Name("clear_date").GreaterThanEqual(expression.Value(since))

	items, err := r.table.Scan(ctx, &filter)
	if err != nil {
		return nil, err
	}
	return unmarshalTodos(items)
}

// ListCompletedByUser returns every completed item of one user,
// regardless of age. Feeds the public chart endpoint.
func (r *TodoRepository) ListCompletedByUser(ctx context.Context, userName string) ([]workout.Todo, error) {
	if userName == "" {
		return []workout.Todo{}, nil
	}

	keyCond := expression.Key("user_name").Equal(expression.Value(userName))
	filter := expression.Name("clear_date").GreaterThan(expression.Value(workout.ClearDateSentinel))

	items, err := r.table.QueryIndex(ctx, r.userIndex, keyCond, &filter)
	if err != nil {
		return nil, err
	}
	return unmarshalTodos(items)
}

// ListByUserAndMenu returns one user's completed items for a single
// training menu, for trend analysis.
func (r *TodoRepository) ListByUserAndMenu(ctx context.Context, userName, menuName string) ([]workout.Todo, error) {
	if userName == "" {
		return []workout.Todo{}, nil
	}

	keyCond := expression.Key("user_name").Equal(expression.Value(userName))
	filter := expression.Name("name").Equal(expression.Value(menuName)).
		And(expression.Name("clear_date").GreaterThan(expression.Value(workout.ClearDateSentinel)))

	items, err := r.table.QueryIndex(ctx, r.userIndex, keyCond, &filter)
	if err != nil {
		return nil, err
	}
	return unmarshalTodos(items)
}

func todoKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func unmarshalTodos(items []map[string]types.AttributeValue) ([]workout.Todo, error) {
	todos := make([]workout.Todo, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &todos); err != nil {
		return nil, apperrors.NewInternalError("unmarshaling todos").WithCause(err)
	}
	return todos, nil
}
