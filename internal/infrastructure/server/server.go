package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/primecore/internal/api/http"
	"github.com/GriffinCanCode/primecore/internal/api/middleware"
	"github.com/GriffinCanCode/primecore/internal/api/ws"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/config"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/logging"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/tracing"
	mathProvider "github.com/GriffinCanCode/primecore/internal/providers/math"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	http     *http.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance. A nil logger is built from the
// logging section of cfg.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	if logger == nil {
		var err error
		logger, err = logging.New(logging.ServerConfig(cfg.Logging.Level, cfg.Logging.Development))
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	logger.Info("Initializing primecore server",
		zap.String("port", cfg.Server.Port),
		zap.Uint64("trial_bound", cfg.Engine.TrialBound),
		zap.Int("random_bases", cfg.Engine.RandomBases),
		zap.Duration("factor_timeout", cfg.Engine.FactorTimeout),
		zap.Int64("max_list_limit", cfg.Engine.MaxListLimit),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("primecore", logger.Component("tracing").Logger)

	// Shared oracle, engine and checker; the trial table is built once here
	start := time.Now()
	ops := common.NewMathOps(cfg.Engine.Settings(), logger.Component("math").Logger, metrics)
	logger.Info("Number theory engine ready", zap.Duration("elapsed", time.Since(start)))

	registry := service.NewRegistry()
	if err := registry.Register(mathProvider.NewProvider(ops)); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register math provider: %w", err)
	}

	// Large integers arrive as JSON numbers; keep them exact
	binding.EnableDecoderUseNumber = true

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.AccessLog(logger.Component("http").Logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, metrics, tracer, logger.Component("api").Logger)
	wsHandler := ws.NewHandler(registry, metrics, logger.Component("ws").Logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// REST shortcuts
	router.GET("/primes/:n", handlers.IsPrime)
	router.GET("/factors/:n", handlers.Factors)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/stats", handlers.Stats)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	withGzip, err := gzhttp.NewWrapper(gzhttp.MinSize(1024))
	if err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to build gzip wrapper: %w", err)
	}
	handler := withGzip(router)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		handler:  handler,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the compressed router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the HTTP server and blocks until it stops. A graceful Shutdown
// is not an error.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// expires, then releases the tracer and flushes the logger
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}
