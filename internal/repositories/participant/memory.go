package participant

import (
	"context"
	"errors"
	"sync"

	"github.com/dayspring/gather/internal/models"
)

// ErrParticipantNotFound is returned when a membership record is not found
var ErrParticipantNotFound = errors.New("participant not found")

// memoryRepository implements Repository with an in-process map
type memoryRepository struct {
	mu           sync.RWMutex
	participants map[string]*models.Participant
}

// NewMemory creates an empty in-memory participant repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		participants: make(map[string]*models.Participant),
	}
}

func cloneParticipant(p *models.Participant) *models.Participant {
	out := *p
	if p.LeftAt != nil {
		left := *p.LeftAt
		out.LeftAt = &left
	}
	return &out
}

// GetParticipant retrieves a membership record by ID
func (r *memoryRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[input.ParticipantID]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return cloneParticipant(p), nil
}

// ListBySession retrieves every membership record for a session
func (r *memoryRepository) ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.Participant, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Participant, 0)
	for _, p := range r.participants {
		if p.SessionID == input.SessionID {
			out = append(out, cloneParticipant(p))
		}
	}
	return out, nil
}

// SaveParticipant persists one membership record
func (r *memoryRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}
	if input.Participant.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.participants[input.Participant.ID] = cloneParticipant(input.Participant)
	return nil
}

// SaveParticipants persists a batch, used to apply a reconciled view
func (r *memoryRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range input.Participants {
		if p == nil || p.ID == "" {
			return errors.New("participant and participant ID cannot be empty")
		}
		r.participants[p.ID] = cloneParticipant(p)
	}
	return nil
}

// DeleteParticipant removes a record
func (r *memoryRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.participants, input.ParticipantID)
	return nil
}
