// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with a default definition.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryMath)).Maybe()
	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("expected success, got %s error: %s", result.ErrorKind, msg)
	}
}

// AssertError is a helper to assert an error result of the given kind.
func AssertError(t *testing.T, result *types.Result, kind string) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	require.False(t, result.Success, "expected error, got success with %v", result.Data)
	require.NotNil(t, result.Error, "expected error message")
	require.Equal(t, kind, result.ErrorKind, "error: %s", *result.Error)
}

// AssertDataField is a helper to assert a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	require.NotNil(t, result.Data, "result data is nil")
	actual, ok := result.Data[field]
	require.True(t, ok, "field %s not found in result data", field)
	require.Equal(t, expected, actual, "field %s", field)
}

// Numbers builds the json.Number slice a result carries for ns.
func Numbers(ns ...string) []json.Number {
	out := make([]json.Number, len(ns))
	for i, n := range ns {
		out[i] = json.Number(n)
	}
	return out
}
