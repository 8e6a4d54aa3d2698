package cards

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papecode/nfc-card-demo/internal/directory"
	"github.com/papecode/nfc-card-demo/internal/qr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	links := qr.NewLinkBuilder("http://localhost:8080")
	return NewService(Seed(links), links, 0, zerolog.Nop())
}

func TestListByOwner(t *testing.T) {
	s := newTestService(t)

	mine, err := s.ListByOwner(context.Background(), "user-001")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, c := range mine {
		assert.Equal(t, "user-001", c.OwnerID)
	}

	none, err := s.ListByOwner(context.Background(), "user-999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPublicHidesInactiveCards(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// card-003 exists but is inactive.
	_, err := s.Get(ctx, "card-003")
	require.NoError(t, err)

	_, err = s.GetPublic(ctx, "card-003")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetPublic(ctx, "card-404")
	assert.ErrorIs(t, err, ErrNotFound)

	card, err := s.GetPublic(ctx, "card-001")
	require.NoError(t, err)
	assert.Equal(t, "card-001", card.ID)
}

func TestCreateAssignsFreshIDAndQRLink(t *testing.T) {
	s := newTestService(t)

	card, err := s.Create(context.Background(), "user-002", Input{
		Name:        "New Card",
		Description: "A card",
		Template:    "minimal",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, card.ID)
	assert.True(t, card.IsActive, "new cards start active")
	assert.Contains(t, card.QRCode, card.ID)

	got, err := s.Get(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got)
}

func TestUpdateReplacesEditableFields(t *testing.T) {
	s := newTestService(t)

	updated, err := s.Update(context.Background(), "card-004", Input{
		Name:        "Renamed",
		Description: "New description",
		Job:         "Designer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Designer", updated.Job)
	assert.Empty(t, updated.Template, "update replaces all editable fields")

	_, err = s.Update(context.Background(), "card-404", Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetActive(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	card, err := s.SetActive(ctx, "card-003", true)
	require.NoError(t, err)
	assert.True(t, card.IsActive)

	_, err = s.GetPublic(ctx, "card-003")
	assert.NoError(t, err, "reactivated card is publicly visible again")
}

func TestDelete(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "card-005"))

	_, err := s.Get(ctx, "card-005")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "card-005"), ErrNotFound)
}

func TestStats(t *testing.T) {
	s := newTestService(t)

	st, err := s.Stats(context.Background(), directory.Seed())
	require.NoError(t, err)

	assert.Equal(t, 5, st.TotalCards)
	assert.Equal(t, 4, st.ActiveCards)
	assert.Equal(t, 1, st.InactiveCards)
	assert.Equal(t, 80, st.ActiveCardPercentage)

	// Admin accounts are excluded from the per-user breakdown.
	assert.Equal(t, 4, st.TotalUsers)
	require.Len(t, st.CardsPerUser, 4)
	byID := map[string]int{}
	for _, oc := range st.CardsPerUser {
		byID[oc.UserID] = oc.CardCount
	}
	assert.Equal(t, 2, byID["user-002"])
	assert.Equal(t, 1, byID["user-003"])
	assert.Equal(t, 0, byID["user-004"])
}

func TestStatsEmptyDataset(t *testing.T) {
	links := qr.NewLinkBuilder("http://localhost:8080")
	s := NewService(nil, links, 0, zerolog.Nop())

	st, err := s.Stats(context.Background(), directory.Seed())
	require.NoError(t, err)
	assert.Equal(t, 0, st.TotalCards)
	assert.Equal(t, 0, st.ActiveCardPercentage, "no division by zero")
}
