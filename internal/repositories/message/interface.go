package message

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dayspring/gather/internal/repositories/message Repository,Remote

import (
	"context"

	"github.com/dayspring/gather/internal/models"
)

// Repository is the device-local chat log. Messages are append-only and
// immutable once written.
type Repository interface {
	// ListBySession retrieves every cached message for a session
	ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.ChatMessage, error)

	// SaveMessage appends one message
	SaveMessage(ctx context.Context, input *SaveMessageInput) error

	// SaveMessages persists a batch, used to apply a reconciled view
	SaveMessages(ctx context.Context, input *SaveMessagesInput) error

	// DeleteMessage removes a message, used only to roll back a send
	// whose local save partially failed
	DeleteMessage(ctx context.Context, input *DeleteMessageInput) error
}

// Remote is the shared chat store, scoped by session.
type Remote interface {
	// FetchAll retrieves every message for a session
	FetchAll(ctx context.Context, input *FetchAllInput) ([]*models.ChatMessage, error)

	// Upsert writes one message to the shared store
	Upsert(ctx context.Context, input *UpsertInput) error
}
