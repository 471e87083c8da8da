package sync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dayspring/gather/internal/services/sync Service

import "context"

// Service triggers per-entity reconciliation of the local cache against
// the shared remote store. Triggers return immediately; the reconciled
// view lands in the local repositories. A failed remote fetch degrades
// to the existing local view and is never surfaced to the caller.
type Service interface {
	// SyncSessions reconciles the public session list
	SyncSessions(ctx context.Context, input *SyncSessionsInput) (*SyncSessionsOutput, error)

	// SyncParticipants reconciles one session's membership records
	SyncParticipants(ctx context.Context, input *SyncParticipantsInput) (*SyncParticipantsOutput, error)

	// SyncInvitations reconciles one session's invitations, marking
	// overdue pending invitations expired along the way
	SyncInvitations(ctx context.Context, input *SyncInvitationsInput) (*SyncInvitationsOutput, error)

	// SyncMessages reconciles one session's chat log
	SyncMessages(ctx context.Context, input *SyncMessagesInput) (*SyncMessagesOutput, error)
}
