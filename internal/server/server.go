package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/asymintervals/internal/api"
	"github.com/GriffinCanCode/asymintervals/internal/config"
	"github.com/GriffinCanCode/asymintervals/internal/logging"
	"github.com/GriffinCanCode/asymintervals/internal/middleware"
	"github.com/GriffinCanCode/asymintervals/internal/monitoring"
	"github.com/GriffinCanCode/asymintervals/internal/providers/interval"
	"github.com/GriffinCanCode/asymintervals/internal/service"
	"github.com/GriffinCanCode/asymintervals/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// New assembles the service from configuration.
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing interval service",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.New()

	registry := service.NewRegistry()
	if err := registry.Register(interval.NewProvider(cfg.Sampling.MaxSamples)); err != nil {
		return nil, err
	}
	stats := registry.Stats()
	logger.Info("Registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if cfg.Logging.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSWithOrigins(cfg.CORS.Origins)))
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

	handlers := api.NewHandlers(registry, metrics, cfg.Sampling.MaxSamples)
	wsHandler := ws.NewHandler(registry, metrics, logger, cfg.Sampling.MaxSamples, cfg.Sampling.BatchSize)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Tool discovery and execution
	router.GET("/tools", handlers.ListTools)
	router.POST("/execute", handlers.Execute)

	// Bulk sample export
	router.GET("/export/samples", handlers.ExportSamples)

	// WebSocket streaming
	router.GET("/stream", wsHandler.HandleConnection)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close flushes buffered log entries.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
