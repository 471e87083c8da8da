package membership

import (
	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
)

// Config holds configuration for the membership service
type Config struct {
	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	ParticipantRepo participantRepo.Repository

	// Remote stores for best-effort replication of public sessions.
	// Optional: when nil, mutations stay local.
	SessionRemote     sessionRepo.Remote
	ParticipantRemote participantRepo.Remote

	// Common dependencies
	Clock clock.Clock
	UUID  uuid.UUID
}

type JoinSessionInput struct {
	SessionID string
	UserID    string
	UserName  string

	// Host marks the joining user as the session host; used only when
	// the host's own membership row is created at session creation
	Host bool
}

type JoinSessionOutput struct {
	Participant *models.Participant
	Session     *models.Session
}

type LeaveSessionInput struct {
	SessionID string
	UserID    string
}

type LeaveSessionOutput struct {
	Session *models.Session
}

type ActiveParticipantsInput struct {
	SessionID string
}

type ActiveParticipantsOutput struct {
	Participants []*models.Participant
}

type ReconcileCountInput struct {
	SessionID string
}

type ReconcileCountOutput struct {
	Count int
}
