package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dayspring/gather/internal/repositories/session Repository,Remote

import (
	"context"

	"github.com/dayspring/gather/internal/models"
)

// Repository is the device-local session cache. Implementations are
// synchronous and always available; errors indicate a persistence fault
// the caller must roll back against.
type Repository interface {
	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves all locally known sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) ([]*models.Session, error)

	// SaveSession persists one session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// SaveSessions persists a batch, used to apply a reconciled view
	SaveSessions(ctx context.Context, input *SaveSessionsInput) error

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}

// Remote is the shared session store. Calls may block and fail; callers
// treat failures as a soft degradation and keep their local view.
type Remote interface {
	// FetchAll retrieves every public session from the shared store
	FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.Session, error)

	// Upsert writes one session to the shared store
	Upsert(ctx context.Context, input *UpsertInput) error
}
