package invitation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayspring/gather/internal/models"
)

func newInvitation(id, code string, createdAt time.Time) *models.Invitation {
	return &models.Invitation{
		ID:           id,
		SessionID:    "sess-1",
		SessionTitle: "Morning Devotional",
		HostID:       "host-1",
		HostName:     "Hannah",
		InviteCode:   code,
		Status:       models.InvitationStatusPending,
		CreatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(models.DefaultInvitationTTL),
	}
}

func TestGetByCodeCaseInsensitive(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{
		Invitation: newInvitation("inv-1", "ABCD1234", now),
	}))

	found, err := repo.GetByCode(ctx, &GetByCodeInput{Code: "abcd1234"})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", found.ID)

	found, err = repo.GetByCode(ctx, &GetByCodeInput{Code: " Abcd1234 "})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", found.ID)
}

func TestGetByCodeMissing(t *testing.T) {
	repo := NewMemory()

	_, err := repo.GetByCode(context.Background(), &GetByCodeInput{Code: "NOPE0000"})
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestGetByCodePrefersNewestRow(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	old := newInvitation("inv-old", "ABCD1234", now.Add(-48*time.Hour))
	old.Status = models.InvitationStatusExpired

	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{Invitation: old}))
	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{
		Invitation: newInvitation("inv-new", "ABCD1234", now),
	}))

	found, err := repo.GetByCode(ctx, &GetByCodeInput{Code: "ABCD1234"})
	require.NoError(t, err)
	assert.Equal(t, "inv-new", found.ID)
}

func TestListBySession(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{
		Invitation: newInvitation("inv-1", "AAAA1111", now),
	}))

	other := newInvitation("inv-2", "BBBB2222", now)
	other.SessionID = "sess-2"
	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{Invitation: other}))

	got, err := repo.ListBySession(ctx, &ListBySessionInput{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "inv-1", got[0].ID)
}

func TestSaveReturnsCopies(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	inv := newInvitation("inv-1", "AAAA1111", now)
	require.NoError(t, repo.SaveInvitation(ctx, &SaveInvitationInput{Invitation: inv}))

	// Mutating the caller's copy must not leak into the store
	inv.Status = models.InvitationStatusDeclined

	stored, err := repo.GetInvitation(ctx, &GetInvitationInput{InvitationID: "inv-1"})
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, stored.Status)
}
