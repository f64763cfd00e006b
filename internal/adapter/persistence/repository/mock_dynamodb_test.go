package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a small in-memory stand-in for DynamoDB used in unit tests.
// It implements just enough of the expression language for the repositories
// here: attribute_not_exists conditions, "#status = :expected" compare-and-set,
// naive SET updates (including if_not_exists) and partition-key queries.
// NOTE: intentionally minimal, not production-grade.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (m *fakeDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := m.tables[*name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		m.tables[*name] = t
	}
	return t
}

func itemKey(attrs map[string]types.AttributeValue) string {
	if v, ok := attrs["id"]; ok {
		return strVal(v)
	}
	if v, ok := attrs["version"]; ok {
		return strVal(v)
	}
	// audit table composite key
	return strVal(attrs["order_id"]) + "|" + strVal(attrs["sk"])
}

func strVal(v types.AttributeValue) string {
	if s, ok := v.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (m *fakeDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.table(params.TableName)[itemKey(params.Key)]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *fakeDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.table(params.TableName)
	k := itemKey(params.Item)
	if params.ConditionExpression != nil && strings.Contains(*params.ConditionExpression, "attribute_not_exists") {
		if _, ok := t[k]; ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	t[k] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *fakeDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.table(params.TableName)
	item, ok := t[itemKey(params.Key)]
	if err := checkCondition(params.ConditionExpression, item, ok, params.ExpressionAttributeNames, params.ExpressionAttributeValues); err != nil {
		return nil, err
	}
	updated := applySet(item, *params.UpdateExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	t[itemKey(params.Key)] = updated
	return &dyn.UpdateItemOutput{Attributes: updated}, nil
}

func (m *fakeDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := strVal(params.ExpressionAttributeValues[":order_id"])
	var out dyn.QueryOutput
	for _, item := range m.table(params.TableName) {
		if strVal(item["order_id"]) != want {
			continue
		}
		if params.FilterExpression != nil {
			status := strVal(item["status"])
			if status != strVal(params.ExpressionAttributeValues[":pending"]) &&
				status != strVal(params.ExpressionAttributeValues[":accepted"]) {
				continue
			}
		}
		out.Items = append(out.Items, item)
	}
	return &out, nil
}

func (m *fakeDynamo) TransactWriteItems(ctx context.Context, params *dyn.TransactWriteItemsInput, optFns ...func(*dyn.Options)) (*dyn.TransactWriteItemsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// First pass: evaluate every condition, cancel the whole batch if any fails.
	for _, ti := range params.TransactItems {
		if p := ti.Put; p != nil && p.ConditionExpression != nil {
			t := m.table(p.TableName)
			if strings.Contains(*p.ConditionExpression, "attribute_not_exists") {
				if _, ok := t[itemKey(p.Item)]; ok {
					return nil, &types.TransactionCanceledException{}
				}
			}
		}
		if u := ti.Update; u != nil {
			t := m.table(u.TableName)
			item, ok := t[itemKey(u.Key)]
			if err := checkCondition(u.ConditionExpression, item, ok, u.ExpressionAttributeNames, u.ExpressionAttributeValues); err != nil {
				return nil, &types.TransactionCanceledException{}
			}
		}
	}

	for _, ti := range params.TransactItems {
		if p := ti.Put; p != nil {
			m.table(p.TableName)[itemKey(p.Item)] = p.Item
		}
		if u := ti.Update; u != nil {
			t := m.table(u.TableName)
			k := itemKey(u.Key)
			t[k] = applySet(t[k], *u.UpdateExpression, u.ExpressionAttributeNames, u.ExpressionAttributeValues)
		}
	}
	return &dyn.TransactWriteItemsOutput{}, nil
}

// checkCondition handles the two condition shapes the repositories use:
// attribute_exists(#pk) and "#status = :expected" (possibly ANDed together).
func checkCondition(expr *string, item map[string]types.AttributeValue, exists bool, names map[string]string, values map[string]types.AttributeValue) error {
	if expr == nil {
		return nil
	}
	if strings.Contains(*expr, "attribute_exists") && !exists {
		return &types.ConditionalCheckFailedException{}
	}
	for _, name := range []string{":expected", ":saved"} {
		want, ok := values[name]
		if !ok || !strings.Contains(*expr, name) {
			continue
		}
		if strVal(item["status"]) != strVal(want) {
			return &types.ConditionalCheckFailedException{}
		}
	}
	return nil
}

// applySet interprets "SET #a = :x, #b = if_not_exists(#b, :y)" over a copy
// of the item.
func applySet(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := map[string]types.AttributeValue{}
	for k, v := range item {
		out[k] = v
	}
	expr = strings.TrimPrefix(strings.TrimSpace(expr), "SET ")
	for _, clause := range splitClauses(expr) {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			continue
		}
		attr := resolveName(strings.TrimSpace(parts[0]), names)
		rhs := strings.TrimSpace(parts[1])
		if strings.HasPrefix(rhs, "if_not_exists(") {
			args := strings.TrimSuffix(strings.TrimPrefix(rhs, "if_not_exists("), ")")
			argParts := strings.SplitN(args, ",", 2)
			if _, ok := out[resolveName(strings.TrimSpace(argParts[0]), names)]; ok {
				continue
			}
			rhs = strings.TrimSpace(argParts[1])
		}
		if v, ok := values[rhs]; ok {
			out[attr] = v
		}
	}
	return out
}

// splitClauses splits on top-level commas only, so if_not_exists(a, b)
// stays in one clause.
func splitClauses(expr string) []string {
	var clauses []string
	depth, start := 0, 0
	for i, c := range expr {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				clauses = append(clauses, expr[start:i])
				start = i + 1
			}
		}
	}
	return append(clauses, expr[start:])
}

func resolveName(token string, names map[string]string) string {
	if strings.HasPrefix(token, "#") {
		if n, ok := names[token]; ok {
			return n
		}
	}
	return strings.TrimPrefix(token, "#")
}

var errUnexpectedCall = errors.New("unexpected dynamodb call")

// failingDynamo errors on every call, for exercising error paths.
type failingDynamo struct{}

func (failingDynamo) GetItem(context.Context, *dyn.GetItemInput, ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	return nil, errUnexpectedCall
}
func (failingDynamo) PutItem(context.Context, *dyn.PutItemInput, ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	return nil, errUnexpectedCall
}
func (failingDynamo) UpdateItem(context.Context, *dyn.UpdateItemInput, ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	return nil, errUnexpectedCall
}
func (failingDynamo) Query(context.Context, *dyn.QueryInput, ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	return nil, errUnexpectedCall
}
func (failingDynamo) TransactWriteItems(context.Context, *dyn.TransactWriteItemsInput, ...func(*dyn.Options)) (*dyn.TransactWriteItemsOutput, error) {
	return nil, errUnexpectedCall
}
