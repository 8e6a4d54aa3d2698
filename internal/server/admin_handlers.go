package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papecode/nfc-card-demo/internal/cards"
	"github.com/papecode/nfc-card-demo/internal/identity"
)

// AdminCard is a card together with its owner, for the admin tables
type AdminCard struct {
	cards.Card
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

// UserDetail is a directory entry together with that user's cards
type UserDetail struct {
	User  identity.User `json:"user"`
	Cards []cards.Card  `json:"cards"`
}

func (s *Server) withOwner(card cards.Card) AdminCard {
	out := AdminCard{Card: card}
	if owner, ok := s.directory.Get(card.OwnerID); ok {
		out.OwnerName = owner.Name
		out.OwnerEmail = owner.Email
	}
	return out
}

// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Success 200 {object} cards.Stats
// @Router /api/admin/stats [get]
func (s *Server) getStats(c *gin.Context) {
	stats, err := s.cards.Stats(c.Request.Context(), s.directory.List())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to compute stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List all cards
// @Tags admin
// @Produce json
// @Success 200 {array} AdminCard
// @Router /api/admin/cards [get]
func (s *Server) listAllCards(c *gin.Context) {
	list, err := s.cards.List(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list cards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]AdminCard, len(list))
	for i, card := range list {
		out[i] = s.withOwner(card)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Activate or deactivate any card
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body CardStatusRequest true "Status"
// @Success 200 {object} AdminCard
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/cards/{id}/status [patch]
func (s *Server) adminSetCardStatus(c *gin.Context) {
	var req CardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	card, err := s.cards.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		if errors.Is(err, cards.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to update card status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, s.withOwner(card))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} identity.User
// @Router /api/admin/users [get]
func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.directory.List())
}

// @Summary Get user with cards
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/users/{id} [get]
func (s *Server) getUser(c *gin.Context) {
	user, ok := s.directory.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	userCards, err := s.cards.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list user cards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if userCards == nil {
		userCards = []cards.Card{}
	}
	c.JSON(http.StatusOK, UserDetail{User: user, Cards: userCards})
}
