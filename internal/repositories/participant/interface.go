package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dayspring/gather/internal/repositories/participant Repository,Remote

import (
	"context"

	"github.com/dayspring/gather/internal/models"
)

// Repository is the device-local participant cache. Rows are never
// deleted, only deactivated, so the join/leave history is preserved.
type Repository interface {
	// GetParticipant retrieves a membership record by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListBySession retrieves every membership record for a session
	ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.Participant, error)

	// SaveParticipant persists one membership record
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// SaveParticipants persists a batch, used to apply a reconciled view
	SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error

	// DeleteParticipant removes a record, used only to roll back a
	// failed join before anyone could observe it
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error
}

// Remote is the shared participant store, scoped by session.
type Remote interface {
	// FetchAll retrieves every membership record for a session
	FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Participant, error)

	// Upsert writes one membership record to the shared store
	Upsert(ctx context.Context, input *UpsertInput) error
}
