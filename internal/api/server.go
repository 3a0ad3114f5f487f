package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/justradojko/intellij-community/internal/api/handlers"
	"github.com/justradojko/intellij-community/internal/api/middleware"
	"github.com/justradojko/intellij-community/internal/config"
	"github.com/justradojko/intellij-community/internal/monitoring"
	"github.com/justradojko/intellij-community/internal/project"
	"github.com/justradojko/intellij-community/pkg/logger"
)

type Server struct {
	config     *config.Config
	logger     logger.Logger
	locator    handlers.Locator
	roots      project.RootProvider
	navigator  handlers.Navigator
	router     *gin.Engine
	httpServer *http.Server
}

func NewServer(
	cfg *config.Config,
	log logger.Logger,
	loc handlers.Locator,
	roots project.RootProvider,
	nav handlers.Navigator,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		config:    cfg,
		logger:    log,
		locator:   loc,
		roots:     roots,
		navigator: nav,
		router:    router,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.router.Use(gin.Recovery())

	// Correlation id for logs and responses
	s.router.Use(middleware.RequestID())

	// CORS for browser and IDE plugin callers
	s.router.Use(middleware.CORSMiddleware(s.config.CORS))

	// Request logging; bodies are included at debug level
	if s.config.LogLevel == "debug" {
		s.router.Use(middleware.RequestLoggerWithBody(s.logger))
	} else {
		s.router.Use(middleware.RequestLogger(s.logger))
	}

	// Prometheus request metrics
	if s.metricsEnabled() {
		s.router.Use(monitoring.InFlightMiddleware())
		s.router.Use(middleware.MetricsMiddleware())
	}

	// Renders c.Error(...) as ErrorResponse; must run closest to the handlers
	s.router.Use(middleware.ErrorHandler(s.logger))
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.roots, s.logger)
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/ready", healthHandler.ReadinessCheck)

	if s.metricsEnabled() {
		monitoring.SetupPrometheusMetrics(s.router, s.config.Monitoring.MetricsPath, config.ServiceVersion)
	}

	// OpenAPI specification endpoints
	openapi := handlers.NewOpenAPIHandler(s.basePath())
	s.router.GET("/openapi.yaml", openapi.GetYAML)
	s.router.GET("/openapi.json", openapi.GetJSON)

	if s.config.Monitoring.SwaggerEnabled {
		// Visit /swagger/index.html
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
		s.router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/swagger/index.html")
		})
	}

	fileHandler := handlers.NewFileHandler(s.locator, s.navigator, s.logger)
	files := s.router.Group(s.basePath())
	files.GET("", fileHandler.GetFile)
	files.POST("", fileHandler.PostFile)
	files.POST("/", fileHandler.PostFile)
	files.GET("/*path", fileHandler.GetFileByPath)
}

func (s *Server) metricsEnabled() bool {
	return s.config.Monitoring.Enabled && s.config.Monitoring.PrometheusEnabled
}

func (s *Server) basePath() string {
	if s.config.API.BasePath == "" {
		return config.DefaultBasePath
	}
	return s.config.API.BasePath
}

func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout(),
		WriteTimeout: s.config.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("File locator REST API server starting", "port", s.config.Port, "base_path", s.basePath())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Info("Shutting down file locator gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler returns the underlying Gin engine so tests (or embedders) can mount it.
func (s *Server) Handler() http.Handler {
	return s.router
}
