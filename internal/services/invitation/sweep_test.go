package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dayspring/gather/internal/models"
)

func TestSweepExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	responded := now.Add(-time.Hour)

	pending := &models.Invitation{
		ID:        "pending",
		Status:    models.InvitationStatusPending,
		ExpiresAt: now.Add(time.Hour),
	}
	overdue := &models.Invitation{
		ID:        "overdue",
		Status:    models.InvitationStatusPending,
		ExpiresAt: now.Add(-time.Minute),
	}
	accepted := &models.Invitation{
		ID:          "accepted",
		Status:      models.InvitationStatusAccepted,
		ExpiresAt:   now.Add(-time.Hour),
		RespondedAt: &responded,
	}

	out := SweepExpired([]*models.Invitation{pending, overdue, accepted}, now)

	assert.Len(t, out, 3)
	assert.Equal(t, models.InvitationStatusPending, out[0].Status)
	assert.Equal(t, models.InvitationStatusExpired, out[1].Status)
	assert.Equal(t, models.InvitationStatusAccepted, out[2].Status)

	// Input rows are never mutated
	assert.Equal(t, models.InvitationStatusPending, overdue.Status)
}

func TestSweepExpiredBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	// Expiring exactly now is still redeemable; only strictly past
	// expiry sweeps
	atBoundary := &models.Invitation{
		ID:        "boundary",
		Status:    models.InvitationStatusPending,
		ExpiresAt: now,
	}

	out := SweepExpired([]*models.Invitation{atBoundary}, now)
	assert.Equal(t, models.InvitationStatusPending, out[0].Status)
}

func TestSweepExpiredEmpty(t *testing.T) {
	assert.Empty(t, SweepExpired(nil, time.Now()))
}
