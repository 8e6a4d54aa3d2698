// Package cards manages the NFC card dataset. The dataset is held in memory
// and every operation simulates a backend round trip with a fixed delay, the
// same way the rest of the demo fakes its backend.
package cards

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/qr"
)

// ErrNotFound is returned when no card matches the requested id.
var ErrNotFound = errors.New("cards: card not found")

// Card is a fixed-shape NFC business card record. Optional fields are empty
// strings when absent.
type Card struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	QRCode      string    `json:"qr_code"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`

	Job     string `json:"job,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// Template is one of: default, dark, light, gradient, minimal.
	Template string `json:"template,omitempty"`
}

// Input carries the caller-editable fields of a card.
type Input struct {
	Name        string
	Description string
	LinkedIn    string
	Twitter     string
	Facebook    string
	Instagram   string
	Job         string
	Company     string
	Email       string
	Phone       string
	Website     string
	Template    string
}

// OwnerCount is one entry of the per-user card breakdown.
type OwnerCount struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	CardCount int    `json:"card_count"`
}

// Stats aggregates the dataset for the admin dashboard.
type Stats struct {
	TotalCards           int          `json:"total_cards"`
	ActiveCards          int          `json:"active_cards"`
	InactiveCards        int          `json:"inactive_cards"`
	TotalUsers           int          `json:"total_users"`
	CardsPerUser         []OwnerCount `json:"cards_per_user"`
	ActiveCardPercentage int          `json:"active_card_percentage"`
}

// Service owns the card dataset.
type Service struct {
	mu    sync.RWMutex
	cards []Card

	links  *qr.LinkBuilder
	delay  time.Duration
	logger zerolog.Logger
}

// NewService creates a card service over the given seed dataset.
func NewService(seed []Card, links *qr.LinkBuilder, delay time.Duration, logger zerolog.Logger) *Service {
	cards := make([]Card, len(seed))
	copy(cards, seed)
	return &Service{cards: cards, links: links, delay: delay, logger: logger}
}

// List returns all cards.
func (s *Service) List(ctx context.Context) ([]Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out, nil
}

// ListByOwner returns the cards belonging to one user.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Card
	for _, c := range s.cards {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns a card by id.
func (s *Service) Get(ctx context.Context, id string) (Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return Card{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return Card{}, ErrNotFound
}

// GetPublic returns a card by id for the public profile page. Inactive cards
// are indistinguishable from absent ones.
func (s *Service) GetPublic(ctx context.Context, id string) (Card, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return Card{}, err
	}
	if !card.IsActive {
		return Card{}, ErrNotFound
	}
	return card, nil
}

// Create adds a new active card for the owner, with a fresh id and a QR link
// pointing at its public view.
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return Card{}, err
	}

	card := Card{
		ID:          "card-" + ulid.Make().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		LinkedIn:    in.LinkedIn,
		Twitter:     in.Twitter,
		Facebook:    in.Facebook,
		Instagram:   in.Instagram,
		Job:         in.Job,
		Company:     in.Company,
		Email:       in.Email,
		Phone:       in.Phone,
		Website:     in.Website,
		Template:    in.Template,
	}
	card.QRCode = s.links.ImageURL(card.ID)

	s.mu.Lock()
	s.cards = append(s.cards, card)
	s.mu.Unlock()

	s.logger.Info().Str("card_id", card.ID).Str("owner_id", ownerID).Msg("Card created")
	return card, nil
}

// Update replaces the editable fields of a card.
func (s *Service) Update(ctx context.Context, id string, in Input) (Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID != id {
			continue
		}
		c := &s.cards[i]
		c.Name = in.Name
		c.Description = in.Description
		c.LinkedIn = in.LinkedIn
		c.Twitter = in.Twitter
		c.Facebook = in.Facebook
		c.Instagram = in.Instagram
		c.Job = in.Job
		c.Company = in.Company
		c.Email = in.Email
		c.Phone = in.Phone
		c.Website = in.Website
		c.Template = in.Template
		return *c, nil
	}
	return Card{}, ErrNotFound
}

// SetActive toggles a card's active flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (Card, error) {
	if err := s.roundTrip(ctx); err != nil {
		return Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].IsActive = active
			return s.cards[i], nil
		}
	}
	return Card{}, ErrNotFound
}

// Delete removes a card.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.roundTrip(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Stats aggregates the dataset. Only user-role owners are counted, matching
// the admin dashboard.
func (s *Service) Stats(ctx context.Context, users []identity.User) (Stats, error) {
	if err := s.roundTrip(ctx); err != nil {
		return Stats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{TotalCards: len(s.cards)}
	for _, c := range s.cards {
		if c.IsActive {
			st.ActiveCards++
		}
	}
	st.InactiveCards = st.TotalCards - st.ActiveCards

	counts := make(map[string]int, len(s.cards))
	for _, c := range s.cards {
		counts[c.OwnerID]++
	}
	for _, u := range users {
		if u.Role != identity.RoleUser {
			continue
		}
		st.TotalUsers++
		st.CardsPerUser = append(st.CardsPerUser, OwnerCount{
			UserID:    u.ID,
			UserName:  u.Name,
			CardCount: counts[u.ID],
		})
	}

	if st.TotalCards > 0 {
		st.ActiveCardPercentage = int(math.Round(float64(st.ActiveCards) / float64(st.TotalCards) * 100))
	}
	return st, nil
}

func (s *Service) roundTrip(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
