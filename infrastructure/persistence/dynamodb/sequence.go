package dynamodb

import (
	"context"

	apperrors "musclelog-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const counterAttribute = "current_number"

// SequenceGenerator hands out monotonically increasing ids, one counter
// row per logical table. Correctness rests entirely on the store's
// atomic ADD: there is no in-memory state and no read-then-write, so
// concurrent callers never see the same value twice.
type SequenceGenerator struct {
	table  Table
	logger *zap.Logger
}

// NewSequenceGenerator creates a generator backed by the counter table
func NewSequenceGenerator(api API, counterTable string, logger *zap.Logger) *SequenceGenerator {
	return &SequenceGenerator{
		table:  NewTable(api, counterTable, logger),
		logger: logger,
	}
}

// Next atomically increments the counter for the logical table and
// returns the new value. A missing counter row is created by the store
// with the default zero, so the first id handed out is 1. On failure the
// error propagates and no id may be assigned from it.
func (g *SequenceGenerator) Next(ctx context.Context, logicalTable string) (int64, error) {
	key := map[string]types.AttributeValue{
		"table_name": &types.AttributeValueMemberS{Value: logicalTable},
	}
	update := expression.Add(expression.Name(counterAttribute), expression.Value(1))

	attrs, err := g.table.Update(ctx, key, update)
	if err != nil {
		return 0, err
	}

	raw, ok := attrs[counterAttribute]
	if !ok {
		return 0, apperrors.NewDatabaseError("countup", nil).
			WithDetails(map[string]interface{}{"table_name": logicalTable})
	}
	var next int64
	if err := attributevalue.Unmarshal(raw, &next); err != nil {
		return 0, apperrors.NewDatabaseError("countup", err)
	}

	g.logger.Debug("sequence advanced",
		zap.String("table_name", logicalTable),
		zap.Int64("current_number", next),
	)
	return next, nil
}
