package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codeforge-ide/codeforge/backend/internal/config"
	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	httpapi "github.com/codeforge-ide/codeforge/backend/internal/http"
	"github.com/codeforge-ide/codeforge/backend/internal/logging"
	"github.com/codeforge-ide/codeforge/backend/internal/middleware"
	"github.com/codeforge-ide/codeforge/backend/internal/monitoring"
	"github.com/codeforge-ide/codeforge/backend/internal/providers/filesystem"
	"github.com/codeforge-ide/codeforge/backend/internal/providers/system"
	"github.com/codeforge-ide/codeforge/backend/internal/service"
	"github.com/codeforge-ide/codeforge/backend/internal/ws"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	httpSrv  *http.Server
	registry *service.Registry
	fsvc     *fs.Service
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	logger.Info("Initializing CodeForge backend",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewMetrics()

	// Filesystem service backs both the provider and the event stream.
	fsvc := fs.NewService(logger,
		fs.WithConfig(cfg.FSConfig()),
		fs.WithWatchBuffer(cfg.Filesystem.WatchBuffer),
	)

	serviceRegistry := service.NewRegistry()
	registerProviders(serviceRegistry, fsvc, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	handlers := httpapi.NewHandlers(serviceRegistry, fsvc, metrics)
	wsHandler := ws.NewHandler(fsvc, logger, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket event stream
	router.GET("/stream", wsHandler.HandleConnection)

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		fsvc:     fsvc,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close gracefully shuts down the server and stops all watches.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP shutdown failed", zap.Error(err))
		}
	}

	s.fsvc.Close()
	s.logger.Info("Stopped filesystem watches")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}

func registerProviders(registry *service.Registry, fsvc *fs.Service, logger *logging.Logger) {
	fsProvider := filesystem.NewProvider(fsvc)
	if err := registry.Register(fsProvider); err != nil {
		logger.Warn("Failed to register filesystem provider", zap.Error(err))
	}

	sysProvider := system.NewProvider()
	if err := registry.Register(sysProvider); err != nil {
		logger.Warn("Failed to register system provider", zap.Error(err))
	}

	stats := registry.Stats()
	logger.Info("Registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)
}
