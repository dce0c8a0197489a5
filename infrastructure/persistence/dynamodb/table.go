package dynamodb

import (
	"context"

	apperrors "musclelog-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Table binds a client to one named table and exposes the store
// primitives the repositories compose. All conditions and updates are
// built with the expression package so attribute names never collide
// with reserved words. Failures wrap the SDK error; nothing retries.
//
// Scans and queries return the store's default page only; a table larger
// than one page is silently truncated.
type Table struct {
	api    API
	name   string
	logger *zap.Logger
}

// NewTable binds a table name to a client handle
func NewTable(api API, name string, logger *zap.Logger) Table {
	return Table{api: api, name: name, logger: logger}
}

// Name returns the bound table name
func (t Table) Name() string {
	return t.name
}

// Scan runs a full-table scan, optionally refined by a filter condition
func (t Table) Scan(ctx context.Context, filter *expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	if filter != nil {
		expr, err := expression.NewBuilder().WithFilter(*filter).Build()
		if err != nil {
			return nil, apperrors.NewInternalError("building scan filter").WithCause(err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := t.api.Scan(ctx, input)
	if err != nil {
		t.logger.Warn("scan failed", zap.String("table", t.name), zap.Error(err))
		return nil, apperrors.NewDatabaseError("scan", err)
	}
	t.logger.Debug("scan complete", zap.String("table", t.name), zap.Int("items", len(out.Items)))
	return out.Items, nil
}

// Query runs a query against the primary key
func (t Table) Query(ctx context.Context, keyCond expression.KeyConditionBuilder) ([]map[string]types.AttributeValue, error) {
	return t.query(ctx, "", keyCond, nil)
}

// QueryIndex runs a query against a named secondary index, optionally
// refined by a non-key filter
func (t Table) QueryIndex(ctx context.Context, index string, keyCond expression.KeyConditionBuilder, filter *expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	return t.query(ctx, index, keyCond, filter)
}

func (t Table) query(ctx context.Context, index string, keyCond expression.KeyConditionBuilder, filter *expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, apperrors.NewInternalError("building query expression").WithCause(err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if index != "" {
		input.IndexName = aws.String(index)
	}

	out, err := t.api.Query(ctx, input)
	if err != nil {
		t.logger.Warn("query failed",
			zap.String("table", t.name),
			zap.String("index", index),
			zap.Error(err),
		)
		return nil, apperrors.NewDatabaseError("query", err)
	}
	t.logger.Debug("query complete",
		zap.String("table", t.name),
		zap.String("index", index),
		zap.Int("items", len(out.Items)),
	)
	return out.Items, nil
}

// Put upserts one item by primary key
func (t Table) Put(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      item,
	})
	if err != nil {
		t.logger.Warn("put failed", zap.String("table", t.name), zap.Error(err))
		return apperrors.NewDatabaseError("put", err)
	}
	return nil
}

// Update applies a partial update and returns the post-update values of
// the attributes the update touched
func (t Table) Update(ctx context.Context, key map[string]types.AttributeValue, update expression.UpdateBuilder) (map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, apperrors.NewInternalError("building update expression").WithCause(err)
	}

	out, err := t.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		t.logger.Warn("update failed", zap.String("table", t.name), zap.Error(err))
		return nil, apperrors.NewDatabaseError("update", err)
	}
	return out.Attributes, nil
}

// Delete removes one item by primary key
func (t Table) Delete(ctx context.Context, key map[string]types.AttributeValue) error {
	_, err := t.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       key,
	})
	if err != nil {
		t.logger.Warn("delete failed", zap.String("table", t.name), zap.Error(err))
		return apperrors.NewDatabaseError("delete", err)
	}
	return nil
}
