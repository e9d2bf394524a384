// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-web/internal/config"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
	"github.com/your-org/storefront-web/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-web/internal/interfaces/http/routes"
	"github.com/your-org/storefront-web/internal/pkg/auth"
)

// Server represents the storefront HTTP server
type Server struct {
	config      *config.Config
	gin         *gin.Engine
	httpServer  *http.Server
	redisClient *redis.Client
	commerce    *commerce.Client
	logger      *logrus.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, redisClient *redis.Client, commerceClient *commerce.Client, logger *logrus.Logger) *Server {
	return &Server{
		config:      cfg,
		redisClient: redisClient,
		commerce:    commerceClient,
		logger:      logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	s.gin = gin.New()

	// Template helpers for money formatting
	s.gin.SetFuncMap(template.FuncMap{
		"money":  formatMoney,
		"mulQty": lineTotal,
		"deref":  derefInt,
	})
	s.gin.LoadHTMLGlob(s.config.Server.TemplateGlob)
	s.gin.Static("/static", s.config.Server.StaticDir)

	// Setup middleware
	s.setupMiddleware()

	// Setup routes
	routes.SetupRoutes(s.gin, s.commerce, s.config)

	// Health check endpoint
	s.gin.GET("/health", s.healthCheck)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.Infof("🚀 Storefront listening on port %s", s.config.Server.Port)
	s.logger.Infof("🛒 Commerce API: %s", s.config.Commerce.BaseURL)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Custom logger middleware
	s.gin.Use(middleware.Logger(s.config))

	// Request ID middleware
	s.gin.Use(middleware.RequestID())

	// CORS middleware
	s.gin.Use(middleware.CORS(s.config))

	// Security headers middleware
	s.gin.Use(middleware.SecurityHeaders())

	// Rate limiting middleware
	s.gin.Use(middleware.RateLimit(s.config, s.redisClient))

	// Timeout middleware
	s.gin.Use(middleware.Timeout(30 * time.Second))

	// Session middleware: builds and hydrates the per-request stores
	cookieManager := auth.NewCookieManager(s.config)
	tokenStore := session.NewRedisTokenStore(s.redisClient, s.config.Session.TTL)
	s.gin.Use(middleware.Session(s.config, cookieManager, tokenStore, s.commerce, s.logger))
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "redis ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// derefInt unwraps optional integer fields for template comparisons
func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// lineTotal computes price x quantity for template display
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// formatMoney renders prices and totals with two decimal places. Accepts
// both raw API floats and decimal totals.
func formatMoney(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v).StringFixed(2)
	case decimal.Decimal:
		return v.StringFixed(2)
	default:
		return fmt.Sprintf("%v", value)
	}
}
