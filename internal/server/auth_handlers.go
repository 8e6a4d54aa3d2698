package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/notify"
	"github.com/papecode/nfc-card-demo/internal/session"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required"`
	Name     string        `json:"name" binding:"required"`
	Role     identity.Role `json:"role" binding:"omitempty,oneof=admin user"`
}

// SessionResponse represents the viewer state returned by auth endpoints
type SessionResponse struct {
	Viewer          *identity.User `json:"viewer"`
	IsAuthenticated bool           `json:"is_authenticated"`
	IsLoading       bool           `json:"is_loading"`
}

func (s *Server) sessionResponse() SessionResponse {
	snap := s.sessions.Snapshot()
	return SessionResponse{
		Viewer:          snap.Viewer,
		IsAuthenticated: snap.IsAuthenticated,
		IsLoading:       snap.IsLoading,
	}
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := s.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrAuthInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "Another sign-in attempt is already in progress"})
			return
		}
		s.logger.Error().Err(err).Msg("Login failed unexpectedly")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, s.sessionResponse())
}

// @Summary Register
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (s *Server) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := s.sessions.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, session.ErrAuthInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "Another sign-in attempt is already in progress"})
			return
		}
		s.logger.Error().Err(err).Msg("Registration failed unexpectedly")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	c.JSON(http.StatusCreated, s.sessionResponse())
}

// @Summary Logout
// @Description Clear the current session
// @Tags auth
// @Produce json
// @Success 204
// @Router /api/auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.Logout(); err != nil {
		s.logger.Error().Err(err).Msg("Logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get session
// @Description Get the current viewer state
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/auth/session [get]
func (s *Server) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessionResponse())
}

// @Summary Pending notifications
// @Description Drain queued transient notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/notifications [get]
func (s *Server) drainNotifications(c *gin.Context) {
	notifications := s.hub.Drain()
	if notifications == nil {
		notifications = []notify.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
