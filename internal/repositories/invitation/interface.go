package invitation

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dayspring/gather/internal/repositories/invitation Repository,Remote

import (
	"context"

	"github.com/dayspring/gather/internal/models"
)

// Repository is the device-local invitation cache. Invitations are never
// deleted, only status-transitioned.
type Repository interface {
	// GetInvitation retrieves an invitation by ID
	GetInvitation(ctx context.Context, input *GetInvitationInput) (*models.Invitation, error)

	// GetByCode retrieves an invitation by its normalized invite code.
	// When several rows carry the same code, the most recently created
	// wins, so a regenerated code resolves to the live invitation.
	GetByCode(ctx context.Context, input *GetByCodeInput) (*models.Invitation, error)

	// ListBySession retrieves every invitation for a session
	ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.Invitation, error)

	// SaveInvitation persists one invitation
	SaveInvitation(ctx context.Context, input *SaveInvitationInput) error

	// SaveInvitations persists a batch, used to apply a reconciled view
	SaveInvitations(ctx context.Context, input *SaveInvitationsInput) error
}

// Remote is the shared invitation store, scoped by session.
type Remote interface {
	// FetchAll retrieves every invitation for a session
	FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Invitation, error)

	// Upsert writes one invitation to the shared store
	Upsert(ctx context.Context, input *UpsertInput) error
}
