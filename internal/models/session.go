package models

import (
	"time"
)

// Session represents a hosted, time-bounded group prayer or study session
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Title is the host-provided session title
	Title string

	// Details is the longer free-form description of the session
	Details string

	// HostID is the user ID of the session host
	HostID string

	// StartTime is when the session started
	StartTime time.Time

	// EndTime is when the session ended, nil while the session is running
	EndTime *time.Time

	// Active indicates the session is currently joinable
	Active bool

	// MaxParticipants is the capacity limit for the session
	MaxParticipants int

	// CurrentParticipants caches the number of active participants.
	// The participant set is the source of truth; this field is
	// reconciled to the counted value on every mutation.
	CurrentParticipants int

	// Category is the session category (prayer, study, etc.)
	Category string

	// Tags are free-form labels attached by the host
	Tags []string

	// Private indicates the session is not replicated to the shared store
	Private bool

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time
}

// MergeID identifies the session during reconciliation.
func (s *Session) MergeID() string {
	return s.ID
}

// RecencyKey is the last-write-wins timestamp for reconciliation.
func (s *Session) RecencyKey() time.Time {
	return s.UpdatedAt
}

// HasCapacity reports whether another participant fits.
func (s *Session) HasCapacity() bool {
	return s.CurrentParticipants < s.MaxParticipants
}
