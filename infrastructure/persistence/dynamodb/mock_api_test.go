package dynamodb

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockAPI implements API with function fields and per-operation call
// counters, so tests can both script responses and assert that an
// operation never reached the store.
type mockAPI struct {
	mu sync.Mutex

	PutItemFn    func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItemFn func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItemFn func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	QueryFn      func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	ScanFn       func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)

	putCalls    int
	updateCalls int
	deleteCalls int
	queryCalls  int
	scanCalls   int
}

func (m *mockAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	m.putCalls++
	m.mu.Unlock()
	if m.PutItemFn != nil {
		return m.PutItemFn(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, params, optFns...)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (m *mockAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, params, optFns...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (m *mockAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	m.queryCalls++
	m.mu.Unlock()
	if m.QueryFn != nil {
		return m.QueryFn(ctx, params, optFns...)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (m *mockAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	m.scanCalls++
	m.mu.Unlock()
	if m.ScanFn != nil {
		return m.ScanFn(ctx, params, optFns...)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (m *mockAPI) writeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCalls + m.updateCalls + m.deleteCalls
}

// evalCondition evaluates the conjunctive comparison expressions the
// expression builder produces, e.g. "(#0 = :0) AND (#1 >= :1)", against
// one item. Only the operators the repositories use are supported.
func evalCondition(expr string, names map[string]string, values map[string]types.AttributeValue, item map[string]types.AttributeValue) bool {
	for _, clause := range strings.Split(expr, " AND ") {
		clause = strings.TrimSpace(clause)
		clause = strings.TrimPrefix(clause, "(")
		clause = strings.TrimSuffix(clause, ")")

		fields := strings.Fields(clause)
		if len(fields) != 3 {
			return false
		}
		nameRef, op, valueRef := fields[0], fields[1], fields[2]

		attrName, ok := names[nameRef]
		if !ok {
			return false
		}
		want, ok := values[valueRef]
		if !ok {
			return false
		}
		have, ok := item[attrName]
		if !ok {
			return false
		}
		if !compareAttr(have, want, op) {
			return false
		}
	}
	return true
}

func compareAttr(have, want types.AttributeValue, op string) bool {
	switch h := have.(type) {
	case *types.AttributeValueMemberS:
		w, ok := want.(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		return compareOrdered(strings.Compare(h.Value, w.Value), op)
	case *types.AttributeValueMemberN:
		w, ok := want.(*types.AttributeValueMemberN)
		if !ok {
			return false
		}
		hv, err1 := strconv.ParseFloat(h.Value, 64)
		wv, err2 := strconv.ParseFloat(w.Value, 64)
		if err1 != nil || err2 != nil {
			return false
		}
		switch {
		case hv < wv:
			return compareOrdered(-1, op)
		case hv > wv:
			return compareOrdered(1, op)
		default:
			return compareOrdered(0, op)
		}
	case *types.AttributeValueMemberBOOL:
		w, ok := want.(*types.AttributeValueMemberBOOL)
		if !ok {
			return false
		}
		return op == "=" && h.Value == w.Value
	default:
		return false
	}
}

func compareOrdered(cmp int, op string) bool {
	switch op {
	case "=":
		return cmp == 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	default:
		return false
	}
}

// queryFromItems builds a QueryFn that emulates the store: it applies
// the key condition and filter expressions against the given rows.
func queryFromItems(rows []map[string]types.AttributeValue) func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		out := &dynamodb.QueryOutput{}
		for _, row := range rows {
			if params.KeyConditionExpression != nil &&
				!evalCondition(*params.KeyConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues, row) {
				continue
			}
			if params.FilterExpression != nil &&
				!evalCondition(*params.FilterExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues, row) {
				continue
			}
			out.Items = append(out.Items, row)
		}
		return out, nil
	}
}

// scanFromItems builds a ScanFn that applies the filter expression
// against the given rows.
func scanFromItems(rows []map[string]types.AttributeValue) func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		out := &dynamodb.ScanOutput{}
		for _, row := range rows {
			if params.FilterExpression != nil &&
				!evalCondition(*params.FilterExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues, row) {
				continue
			}
			out.Items = append(out.Items, row)
		}
		return out, nil
	}
}
