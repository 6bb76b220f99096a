package services

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

// fakeDynamo implements DynamoAPI with overridable functions; unset
// functions succeed with zero values.
type fakeDynamo struct {
	getItemFn              func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	putItemFn              func(ctx context.Context, tableName string, item interface{}) error
	putItemWithConditionFn func(ctx context.Context, tableName string, item interface{}, conditionExpression string) error
	updateItemFn           func(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error)
	deleteItemFn           func(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	queryItemsFn           func(ctx context.Context, tableName string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	queryItemsWithIndexFn  func(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	scanWithFilterFn       func(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields, excludeFields map[string]string, limit int32, result interface{}) error
}

func (f *fakeDynamo) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if f.getItemFn != nil {
		return f.getItemFn(ctx, tableName, key)
	}
	return nil, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	if f.putItemFn != nil {
		return f.putItemFn(ctx, tableName, item)
	}
	return nil
}

func (f *fakeDynamo) PutItemWithCondition(ctx context.Context, tableName string, item interface{}, conditionExpression string) error {
	if f.putItemWithConditionFn != nil {
		return f.putItemWithConditionFn(ctx, tableName, item, conditionExpression)
	}
	return nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	if f.updateItemFn != nil {
		return f.updateItemFn(ctx, tableName, updateExpression, key, values, names)
	}
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	if f.deleteItemFn != nil {
		return f.deleteItemFn(ctx, tableName, key)
	}
	return nil
}

func (f *fakeDynamo) QueryItems(ctx context.Context, tableName string, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	if f.queryItemsFn != nil {
		return f.queryItemsFn(ctx, tableName, keyCondition, values, names, limit)
	}
	return nil, nil
}

func (f *fakeDynamo) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	if f.queryItemsWithIndexFn != nil {
		return f.queryItemsWithIndexFn(ctx, tableName, indexName, keyCondition, values, names, limit)
	}
	return nil, nil
}

func (f *fakeDynamo) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields, excludeFields map[string]string, limit int32, result interface{}) error {
	if f.scanWithFilterFn != nil {
		return f.scanWithFilterFn(ctx, tableName, filterFunc, matchFields, excludeFields, limit, result)
	}
	return nil
}

var _ DynamoAPI = (*fakeDynamo)(nil)

// marshalItem converts a struct into a DynamoDB attribute map for fakes
func marshalItem(t *testing.T, item interface{}) map[string]types.AttributeValue {
	t.Helper()
	marshaled, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)
	return marshaled
}

// marshalItems converts several structs into DynamoDB attribute maps
func marshalItems(t *testing.T, items ...interface{}) []map[string]types.AttributeValue {
	t.Helper()
	out := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		out = append(out, marshalItem(t, item))
	}
	return out
}
