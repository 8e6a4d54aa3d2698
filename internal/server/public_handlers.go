package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papecode/nfc-card-demo/internal/cards"
)

// PublicCard is the read-only profile served to anyone scanning a QR code
type PublicCard struct {
	cards.Card
	OwnerName    string `json:"owner_name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// @Summary Public card profile
// @Description Read-only card view reached by scanning a QR code. Inactive
// cards are indistinguishable from absent ones.
// @Tags public
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} PublicCard
// @Failure 404 {object} map[string]interface{}
// @Router /cards/{id}/view [get]
func (s *Server) publicCardView(c *gin.Context) {
	card, err := s.cards.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, cards.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to fetch public card")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := PublicCard{Card: card}
	if owner, ok := s.directory.Get(card.OwnerID); ok {
		out.OwnerName = owner.Name
		out.ProfileImage = owner.ProfileImage
	}
	c.JSON(http.StatusOK, out)
}
