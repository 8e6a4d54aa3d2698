// Package server
//
// @title NFC Card Manager API
// @version 1.0
// @description Demo service for managing NFC business cards
// @host localhost:8080
// @BasePath /
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/papecode/nfc-card-demo/internal/cards"
	"github.com/papecode/nfc-card-demo/internal/config"
	"github.com/papecode/nfc-card-demo/internal/directory"
	"github.com/papecode/nfc-card-demo/internal/guard"
	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/notify"
	"github.com/papecode/nfc-card-demo/internal/qr"
	"github.com/papecode/nfc-card-demo/internal/session"
	"github.com/papecode/nfc-card-demo/internal/storage"
)

// cardTemplates are the accepted card style names.
var cardTemplates = map[string]bool{
	"default": true, "dark": true, "light": true, "gradient": true, "minimal": true,
}

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	config    *config.Config
	logger    zerolog.Logger
	validator *validator.Validate

	kv        *storage.KV
	directory *directory.Directory
	sessions  *session.Store
	cards     *cards.Service
	hub       *notify.Hub
	version   string
}

// New creates a new server instance
func New(cfg *config.Config, zlog zerolog.Logger, version string) (*Server, error) {
	// Durable key-value storage backing the persisted session record
	kv, err := storage.Open(cfg.Session.StorePath)
	if err != nil {
		return nil, err
	}

	// Initialize validator
	validate := validator.New()

	// Register custom validators
	validate.RegisterValidation("cardtemplate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || cardTemplates[value]
	})

	links := qr.NewLinkBuilder(cfg.Server.PublicBaseURL)
	dir := directory.New(directory.Seed())
	hub := notify.NewHub(zlog)

	server := &Server{
		config:    cfg,
		logger:    zlog,
		validator: validate,
		kv:        kv,
		directory: dir,
		sessions:  session.NewStore(dir, kv, hub, cfg.Session.SimulatedLatency, zlog),
		cards:     cards.NewService(cards.Seed(links), links, cfg.Session.SimulatedLatency, zlog),
		hub:       hub,
		version:   version,
	}

	// Setup router
	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	// CORS middleware for the SPA frontend
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.config.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (no auth required)
	s.router.GET("/health", s.healthCheck)

	// Public card profile, the target of QR code links
	s.router.GET("/cards/:id/view", s.publicCardView)

	api := s.router.Group("/api")

	// Public auth endpoints (no auth required)
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.GET("/notifications", s.drainNotifications)

	// Any authenticated viewer
	authed := api.Group("")
	authed.Use(guard.Middleware(s.sessions, "", s.logger))
	{
		authed.GET("/auth/session", s.getSession)
		authed.POST("/auth/logout", s.logout)
	}

	// Card management (user role)
	userCards := api.Group("/cards")
	userCards.Use(guard.Middleware(s.sessions, identity.RoleUser, s.logger))
	{
		userCards.GET("", s.listCards)
		userCards.POST("", s.createCard)
		userCards.GET("/:id", s.getCard)
		userCards.PATCH("/:id", s.updateCard)
		userCards.DELETE("/:id", s.deleteCard)
		userCards.PATCH("/:id/status", s.setCardStatus)
	}

	// Admin surface (admin role)
	admin := api.Group("/admin")
	admin.Use(guard.Middleware(s.sessions, identity.RoleAdmin, s.logger))
	{
		admin.GET("/stats", s.getStats)
		admin.GET("/cards", s.listAllCards)
		admin.PATCH("/cards/:id/status", s.adminSetCardStatus)
		admin.GET("/users", s.listUsers)
		admin.GET("/users/:id", s.getUser)
	}
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

// @Router /health [get]
// @Success 200 {object} map[string]interface{}
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "nfc-card-api",
		"version":   s.version,
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.Server.ListenAddr

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Restore the persisted session in the background. The guard holds
	// navigations in the loading state until this completes.
	go func() {
		if err := s.sessions.Restore(context.Background()); err != nil {
			s.logger.Error().Err(err).Msg("Failed to restore session")
		}
	}()

	// Start server in goroutine
	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	// Close storage to flush WAL writes
	if err := s.kv.Close(); err != nil {
		s.logger.Error().Err(err).Msg("Error closing storage")
	} else {
		s.logger.Info().Msg("Storage closed successfully")
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
