package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/client"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/config"
	mathProvider "github.com/GriffinCanCode/primecore/internal/providers/math"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/service"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// Runner executes tools either in-process or against a server
type Runner interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error)
	Services(ctx context.Context) ([]types.Service, error)
}

// localRunner runs tools through an in-process registry
type localRunner struct {
	registry *service.Registry
}

func newLocalRunner(engine config.EngineConfig, logger *zap.Logger) (*localRunner, error) {
	if err := engine.Validate(); err != nil {
		return nil, err
	}
	registry := service.NewRegistry()
	ops := common.NewMathOps(engine.Settings(), logger, nil)
	if err := registry.Register(mathProvider.NewProvider(ops)); err != nil {
		return nil, fmt.Errorf("register math provider: %w", err)
	}
	return &localRunner{registry: registry}, nil
}

func (r *localRunner) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	return r.registry.Execute(ctx, toolID, params, nil)
}

func (r *localRunner) Services(ctx context.Context) ([]types.Service, error) {
	return r.registry.List(nil), nil
}

func newRemoteRunner(baseURL string, logger *zap.Logger) Runner {
	cfg := client.DefaultConfig(baseURL)
	cfg.Logger = logger
	return client.New(cfg)
}
