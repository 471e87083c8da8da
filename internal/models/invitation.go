package models

import (
	"time"
)

// InvitationStatus represents the current state of an invitation
type InvitationStatus string

const (
	// InvitationStatusPending indicates an invitation is awaiting a response
	InvitationStatusPending InvitationStatus = "pending"

	// InvitationStatusAccepted indicates the recipient joined the session
	InvitationStatusAccepted InvitationStatus = "accepted"

	// InvitationStatusDeclined indicates the recipient declined
	InvitationStatusDeclined InvitationStatus = "declined"

	// InvitationStatusExpired indicates the invitation lapsed unanswered
	InvitationStatusExpired InvitationStatus = "expired"
)

// DefaultInvitationTTL is how long an invitation stays redeemable.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// Invitation is a single-use, time-limited authorization to join a session
type Invitation struct {
	// ID is the unique identifier for this invitation
	ID string

	// SessionID is the session the invitation grants access to
	SessionID string

	// SessionTitle is a denormalized snapshot of the session title,
	// taken at creation so the invitation renders without a session fetch
	SessionTitle string

	// HostID is the user ID of the inviting host
	HostID string

	// HostName is the display name of the inviting host
	HostName string

	// InvitedUserID is the targeted user, empty for email or code-only invites
	InvitedUserID string

	// InvitedEmail is the targeted email address, empty unless email-targeted
	InvitedEmail string

	// InviteCode is the short shareable code, unique per active invitation
	InviteCode string

	// Status is the current lifecycle state
	Status InvitationStatus

	// CreatedAt is when the host created the invitation
	CreatedAt time.Time

	// RespondedAt is when the recipient accepted or declined, nil until then
	RespondedAt *time.Time

	// ExpiresAt is when the invitation stops being redeemable
	ExpiresAt time.Time
}

// Valid reports whether the invitation is redeemable at the given instant.
// Expiry is wall-clock relative, so callers must re-evaluate at use time
// rather than caching the result.
func (i *Invitation) Valid(now time.Time) bool {
	return i.Status == InvitationStatusPending && !now.After(i.ExpiresAt)
}

// Terminal reports whether the invitation reached a final state.
func (i *Invitation) Terminal() bool {
	return i.Status != InvitationStatusPending
}

// MergeID identifies the invitation during reconciliation.
func (i *Invitation) MergeID() string {
	return i.ID
}

// RecencyKey is the last-write-wins timestamp for reconciliation.
func (i *Invitation) RecencyKey() time.Time {
	if i.RespondedAt != nil {
		return *i.RespondedAt
	}
	return i.CreatedAt
}
