package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papecode/nfc-card-demo/internal/cards"
	"github.com/papecode/nfc-card-demo/internal/identity"
)

// CardRequest carries the editable fields of a card
type CardRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	LinkedIn    string `json:"linkedin" validate:"omitempty,url"`
	Twitter     string `json:"twitter" validate:"omitempty,url"`
	Facebook    string `json:"facebook" validate:"omitempty,url"`
	Instagram   string `json:"instagram" validate:"omitempty,url"`
	Job         string `json:"job" validate:"max=100"`
	Company     string `json:"company" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Website     string `json:"website" validate:"omitempty,url"`
	Template    string `json:"template" validate:"cardtemplate"`
}

func (r CardRequest) input() cards.Input {
	return cards.Input{
		Name:        r.Name,
		Description: r.Description,
		LinkedIn:    r.LinkedIn,
		Twitter:     r.Twitter,
		Facebook:    r.Facebook,
		Instagram:   r.Instagram,
		Job:         r.Job,
		Company:     r.Company,
		Email:       r.Email,
		Phone:       r.Phone,
		Website:     r.Website,
		Template:    r.Template,
	}
}

// CardStatusRequest toggles a card's active flag
type CardStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// viewer returns the authenticated viewer. The guard guarantees one is
// present on protected routes.
func (s *Server) viewer(c *gin.Context) (identity.User, bool) {
	snap := s.sessions.Snapshot()
	if snap.Viewer == nil {
		s.logger.Error().Str("path", c.Request.URL.Path).Msg("No viewer behind guarded route")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return identity.User{}, false
	}
	return *snap.Viewer, true
}

// ownedCard fetches a card and checks it belongs to the viewer. A foreign
// card is reported as not found, not forbidden.
func (s *Server) ownedCard(c *gin.Context, ownerID string) (cards.Card, bool) {
	card, err := s.cards.Get(c.Request.Context(), c.Param("id"))
	if err != nil || card.OwnerID != ownerID {
		if err != nil && !errors.Is(err, cards.ErrNotFound) {
			s.logger.Error().Err(err).Msg("Failed to fetch card")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return cards.Card{}, false
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return cards.Card{}, false
	}
	return card, true
}

// @Summary List my cards
// @Tags cards
// @Produce json
// @Success 200 {array} cards.Card
// @Router /api/cards [get]
func (s *Server) listCards(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	list, err := s.cards.ListByOwner(c.Request.Context(), viewer.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list cards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if list == nil {
		list = []cards.Card{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create card
// @Tags cards
// @Accept json
// @Produce json
// @Param request body CardRequest true "Card"
// @Success 201 {object} cards.Card
// @Failure 400 {object} map[string]interface{}
// @Router /api/cards [post]
func (s *Server) createCard(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	card, err := s.cards.Create(c.Request.Context(), viewer.ID, req.input())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create card")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, card)
}

// @Summary Get one of my cards
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} cards.Card
// @Failure 404 {object} map[string]interface{}
// @Router /api/cards/{id} [get]
func (s *Server) getCard(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	card, ok := s.ownedCard(c, viewer.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body CardRequest true "Card"
// @Success 200 {object} cards.Card
// @Failure 404 {object} map[string]interface{}
// @Router /api/cards/{id} [patch]
func (s *Server) updateCard(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	if _, ok := s.ownedCard(c, viewer.ID); !ok {
		return
	}

	card, err := s.cards.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to update card")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// @Summary Delete card
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/cards/{id} [delete]
func (s *Server) deleteCard(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	if _, ok := s.ownedCard(c, viewer.ID); !ok {
		return
	}

	if err := s.cards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete card")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body CardStatusRequest true "Status"
// @Success 200 {object} cards.Card
// @Failure 404 {object} map[string]interface{}
// @Router /api/cards/{id}/status [patch]
func (s *Server) setCardStatus(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	var req CardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if _, ok := s.ownedCard(c, viewer.ID); !ok {
		return
	}

	card, err := s.cards.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to update card status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, card)
}
