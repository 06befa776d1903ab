package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	httpapi "github.com/GriffinCanCode/MathSearch/backend/internal/api/http"
	"github.com/GriffinCanCode/MathSearch/backend/internal/api/middleware"
	"github.com/GriffinCanCode/MathSearch/backend/internal/api/ws"
	"github.com/GriffinCanCode/MathSearch/backend/internal/domain/examples"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/tracing"
	mathProvider "github.com/GriffinCanCode/MathSearch/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathSearch/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	logger   *logging.Logger
	config   *config.Config
	httpSrv  *http.Server
}

// NewServer creates a server that logs according to cfg.Logging.
func NewServer(cfg *config.Config) (*Server, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" && !cfg.Logging.Development {
		logCfg.Level = cfg.Logging.Level
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return NewServerWithLogger(cfg, logger)
}

// NewServerWithLogger creates a server instance using the given logger
func NewServerWithLogger(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Info("Initializing MathSearch server",
		zap.String("addr", cfg.Addr()),
		zap.Int("max_query_len", cfg.Solver.MaxQueryLen),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("mathsearch", logger.Logger)

	catalog, err := loadCatalog(cfg.Solver.ExamplesFile)
	if err != nil {
		tracer.Close()
		return nil, err
	}
	logger.Info("Loaded example catalog", zap.Int("examples", catalog.Len()))

	provider := mathProvider.NewProvider(solver.DefaultRegistry(), catalog, logger).
		WithMetrics(metrics).
		WithTracer(tracer).
		WithMaxQueryLen(cfg.Solver.MaxQueryLen)

	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(provider); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register math provider: %w", err)
	}
	logger.Info("Registered service providers", zap.Any("stats", serviceRegistry.Stats()))

	if !cfg.Logging.Development && gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.Origins...)))
	router.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.GlobalRPS > 0 {
			router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: cfg.RateLimit.GlobalRPS,
				Burst:             cfg.RateLimit.GlobalRPS,
			}))
		}
		router.Use(middleware.RateLimit(rl))
	}

	handlers := httpapi.NewHandlers(serviceRegistry, provider, catalog, metrics, logger, cfg.Solver.MaxQueryLen)
	handlers.Register(router)

	wsHandler := ws.NewHandler(provider, metrics, logger, cfg.CORS.Origins...).
		WithMaxQueryLen(cfg.Solver.MaxQueryLen)
	router.GET("/stream", wsHandler.HandleConnection)

	router.GET("/metrics", gin.WrapH(monitoring.Handler(metrics)))

	if cfg.Logging.Development {
		levels := gin.WrapH(logger.LevelHandler())
		router.GET("/debug/loglevel", levels)
		router.PUT("/debug/loglevel", levels)
	}

	s := &Server{
		router:   router,
		registry: serviceRegistry,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		config:   cfg,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server initialized successfully")
	return s, nil
}

func loadCatalog(path string) (*examples.Catalog, error) {
	if path == "" {
		return examples.Load()
	}
	catalog, err := examples.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load examples from %s: %w", path, err)
	}
	return catalog, nil
}

// Handler returns the root handler. Responses are gzip compressed when the
// client accepts it; WebSocket upgrades bypass compression.
func (s *Server) Handler() http.Handler {
	compressed := gzhttp.GzipHandler(s.router)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			s.router.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Metrics returns the metrics collector
func (s *Server) Metrics() *monitoring.Metrics {
	return s.metrics
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.Close()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpSrv.Shutdown(ctx)
	s.Close()
	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close releases background resources
func (s *Server) Close() {
	s.tracer.Close()
	_ = s.logger.Sync()
}
