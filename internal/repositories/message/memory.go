package message

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dayspring/gather/internal/models"
)

// ErrMessageNotFound is returned when a message is not found
var ErrMessageNotFound = errors.New("message not found")

// memoryRepository implements Repository with an in-process map
type memoryRepository struct {
	mu       sync.RWMutex
	messages map[string]*models.ChatMessage
}

// NewMemory creates an empty in-memory message repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		messages: make(map[string]*models.ChatMessage),
	}
}

func cloneMessage(m *models.ChatMessage) *models.ChatMessage {
	out := *m
	return &out
}

// ListBySession retrieves every cached message for a session in
// chronological order
func (r *memoryRepository) ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.ChatMessage, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ChatMessage, 0)
	for _, m := range r.messages {
		if m.SessionID == input.SessionID {
			out = append(out, cloneMessage(m))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

// SaveMessage appends one message
func (r *memoryRepository) SaveMessage(ctx context.Context, input *SaveMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}
	if input.Message.ID == "" {
		return errors.New("message ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages[input.Message.ID] = cloneMessage(input.Message)
	return nil
}

// SaveMessages persists a batch, used to apply a reconciled view
func (r *memoryRepository) SaveMessages(ctx context.Context, input *SaveMessagesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range input.Messages {
		if m == nil || m.ID == "" {
			return errors.New("message and message ID cannot be empty")
		}
		r.messages[m.ID] = cloneMessage(m)
	}
	return nil
}

// DeleteMessage removes a message
func (r *memoryRepository) DeleteMessage(ctx context.Context, input *DeleteMessageInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, input.MessageID)
	return nil
}
