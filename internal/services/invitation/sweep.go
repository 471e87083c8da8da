package invitation

import (
	"time"

	"github.com/dayspring/gather/internal/models"
)

// SweepExpired marks pending invitations whose expiry has passed as
// expired. It is a pure transform applied during reconciliation passes;
// expiry is only ever observed lazily, never pushed by a timer. Already
// terminal invitations pass through untouched.
func SweepExpired(invitations []*models.Invitation, now time.Time) []*models.Invitation {
	out := make([]*models.Invitation, len(invitations))
	for i, inv := range invitations {
		if inv.Status == models.InvitationStatusPending && now.After(inv.ExpiresAt) {
			expired := *inv
			expired.Status = models.InvitationStatusExpired
			out[i] = &expired
			continue
		}
		out[i] = inv
	}
	return out
}
