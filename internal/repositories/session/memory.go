package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dayspring/gather/internal/models"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// memoryRepository implements Repository with an in-process map.
// It backs the device-local cache the sync service reconciles into.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates an empty in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

func cloneSession(s *models.Session) *models.Session {
	out := *s
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	return &out
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

// ListSessions retrieves all locally known sessions
func (r *memoryRepository) ListSessions(ctx context.Context, input *ListSessionsInput) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, cloneSession(s))
	}
	return out, nil
}

// SaveSession persists one session
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = cloneSession(input.Session)
	return nil
}

// SaveSessions persists a batch, used to apply a reconciled view
func (r *memoryRepository) SaveSessions(ctx context.Context, input *SaveSessionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range input.Sessions {
		if s == nil || s.ID == "" {
			return errors.New("session and session ID cannot be empty")
		}
		r.sessions[s.ID] = cloneSession(s)
	}
	return nil
}

// DeleteSession removes a session
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	return nil
}
