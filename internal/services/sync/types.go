package sync

import (
	"github.com/dayspring/gather/internal/common/clock"
	invitationRepo "github.com/dayspring/gather/internal/repositories/invitation"
	messageRepo "github.com/dayspring/gather/internal/repositories/message"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
)

// Config holds configuration for the sync service
type Config struct {
	// Local repositories the reconciled views are applied to
	SessionRepo     sessionRepo.Repository
	ParticipantRepo participantRepo.Repository
	InvitationRepo  invitationRepo.Repository
	MessageRepo     messageRepo.Repository

	// Remote shared stores
	SessionRemote     sessionRepo.Remote
	ParticipantRemote participantRepo.Remote
	InvitationRemote  invitationRepo.Remote
	MessageRemote     messageRepo.Remote

	// Clock drives the invitation expiry sweep
	Clock clock.Clock
}

type SyncSessionsInput struct {
}

type SyncSessionsOutput struct {
}

type SyncParticipantsInput struct {
	SessionID string
}

type SyncParticipantsOutput struct {
}

type SyncInvitationsInput struct {
	SessionID string
}

type SyncInvitationsOutput struct {
}

type SyncMessagesInput struct {
	SessionID string
}

type SyncMessagesOutput struct {
}
