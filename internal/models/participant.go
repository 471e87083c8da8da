package models

import (
	"time"
)

// Participant represents a user's membership record in a session
type Participant struct {
	// ID is a unique identifier for this membership record
	ID string

	// SessionID is the ID of the session the user belongs to
	SessionID string

	// UserID is the ID of the user
	UserID string

	// UserName is the display name of the user
	UserName string

	// JoinedAt is when the user joined the session
	JoinedAt time.Time

	// LeftAt is when the user left, nil while still a member
	LeftAt *time.Time

	// Host indicates this participant hosts the session
	Host bool

	// Active indicates the user is currently in the session.
	// Rows are never deleted, only deactivated, so the history of
	// joins and leaves survives reconciliation.
	Active bool
}

// MergeID identifies the membership record during reconciliation.
func (p *Participant) MergeID() string {
	return p.ID
}

// RecencyKey is the last-write-wins timestamp for reconciliation.
// A leave is more recent than the join it supersedes, so a propagated
// leave beats a stale active copy of the same row.
func (p *Participant) RecencyKey() time.Time {
	if p.LeftAt != nil {
		return *p.LeftAt
	}
	return p.JoinedAt
}
