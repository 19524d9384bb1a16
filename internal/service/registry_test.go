package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/primecore/internal/shared/types"
	"github.com/GriffinCanCode/primecore/internal/testutil"
)

type mockProvider struct {
	id       string
	category types.Category
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryMath
	}
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     category,
		Capabilities: []string{"primality", "factorization"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "test",
				Description: "A test tool",
				Returns:     "boolean",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"tool": toolID},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: ""}))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test2"})
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "seq", category: types.CategorySequences})

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "seq", services[0].ID)
	assert.Equal(t, "test1", services[1].ID)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)

	empty := types.Category("none")
	assert.NotNil(t, r.List(&empty))
	assert.Empty(t, r.List(&empty))
}

func TestTool(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "math"})

	tool, ok := r.Tool("math.test")
	require.True(t, ok)
	assert.Equal(t, "test", tool.Name)

	_, ok = r.Tool("math.missing")
	assert.False(t, ok)
	_, ok = r.Tool("nodot")
	assert.False(t, ok)
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "math"})
	r.Register(&mockProvider{id: "other", category: types.CategorySequences})

	results := r.Discover("math primality", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math", results[0].ID)

	assert.Len(t, r.Discover("math primality", 1), 1)
	assert.Empty(t, r.Discover("zzz", 5))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	result, err := r.Execute(context.Background(), "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "test.test", result.Data["tool"])

	t.Run("invalid format", func(t *testing.T) {
		result, err := r.Execute(context.Background(), "nodot", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "invalid_input", result.ErrorKind)
	})

	t.Run("unknown service", func(t *testing.T) {
		result, err := r.Execute(context.Background(), "missing.tool", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Execute(ctx, "test.test", nil, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 2}, stats["categories"])
}

func TestExecuteForwardsToProvider(t *testing.T) {
	p := testutil.NewMockServiceProvider(t, "calc")
	params := map[string]interface{}{"n": "97"}
	requestID := "req_1"
	appCtx := &types.Context{RequestID: &requestID}

	p.On("Execute", mock.Anything, "calc.test", params, appCtx).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": true}}, nil).
		Once()

	r := NewRegistry()
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "calc.test", params, appCtx)
	require.NoError(t, err)
	testutil.AssertDataField(t, result, "result", true)

	tool, ok := r.Tool("calc.test")
	require.True(t, ok)
	assert.Equal(t, "test", tool.Name)

	p.AssertExpectations(t)
}
