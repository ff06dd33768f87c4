package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"
)

// mockDynamo is a testify mock of the DynamoAPI surface.
type mockDynamo struct {
	mock.Mock
}

func (m *mockDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *mockDynamo) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]types.AttributeValue), args.Error(1)
}

func (m *mockDynamo) QueryItems(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]types.AttributeValue), args.Error(1)
}

func (m *mockDynamo) QueryItemsWithOptions(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit, latestFirst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]types.AttributeValue), args.Error(1)
}

func (m *mockDynamo) QueryItemsWithIndex(ctx context.Context, tableName string, indexName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, indexName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]types.AttributeValue), args.Error(1)
}

func (m *mockDynamo) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	args := m.Called(ctx, tableName, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]types.AttributeValue), args.Error(1)
}

func (m *mockDynamo) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	args := m.Called(ctx, tableName, key)
	return args.Error(0)
}

func (m *mockDynamo) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	args := m.Called(ctx, tableName, filterFunc, excludeFields, result)
	return args.Error(0)
}

func (m *mockDynamo) BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error {
	args := m.Called(ctx, tableName, writeRequests)
	return args.Error(0)
}
