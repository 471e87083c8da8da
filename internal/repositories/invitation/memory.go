package invitation

import (
	"context"
	"errors"
	"sync"

	"github.com/dayspring/gather/internal/common/invitecode"
	"github.com/dayspring/gather/internal/models"
)

// ErrInvitationNotFound is returned when an invitation is not found
var ErrInvitationNotFound = errors.New("invitation not found")

// memoryRepository implements Repository with an in-process map
type memoryRepository struct {
	mu          sync.RWMutex
	invitations map[string]*models.Invitation
}

// NewMemory creates an empty in-memory invitation repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		invitations: make(map[string]*models.Invitation),
	}
}

func cloneInvitation(i *models.Invitation) *models.Invitation {
	out := *i
	if i.RespondedAt != nil {
		responded := *i.RespondedAt
		out.RespondedAt = &responded
	}
	return &out
}

// GetInvitation retrieves an invitation by ID
func (r *memoryRepository) GetInvitation(ctx context.Context, input *GetInvitationInput) (*models.Invitation, error) {
	if input == nil || input.InvitationID == "" {
		return nil, errors.New("input and invitation ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invitations[input.InvitationID]
	if !ok {
		return nil, ErrInvitationNotFound
	}
	return cloneInvitation(inv), nil
}

// GetByCode retrieves an invitation by its invite code, case-insensitively.
// With duplicate codes the most recently created row wins.
func (r *memoryRepository) GetByCode(ctx context.Context, input *GetByCodeInput) (*models.Invitation, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	code := invitecode.Normalize(input.Code)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.Invitation
	for _, inv := range r.invitations {
		if invitecode.Normalize(inv.InviteCode) != code {
			continue
		}
		if found == nil || inv.CreatedAt.After(found.CreatedAt) {
			found = inv
		}
	}

	if found == nil {
		return nil, ErrInvitationNotFound
	}
	return cloneInvitation(found), nil
}

// ListBySession retrieves every invitation for a session
func (r *memoryRepository) ListBySession(ctx context.Context, input *ListBySessionInput) ([]*models.Invitation, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Invitation, 0)
	for _, inv := range r.invitations {
		if inv.SessionID == input.SessionID {
			out = append(out, cloneInvitation(inv))
		}
	}
	return out, nil
}

// SaveInvitation persists one invitation
func (r *memoryRepository) SaveInvitation(ctx context.Context, input *SaveInvitationInput) error {
	if input == nil || input.Invitation == nil {
		return errors.New("input and invitation cannot be nil")
	}
	if input.Invitation.ID == "" {
		return errors.New("invitation ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.invitations[input.Invitation.ID] = cloneInvitation(input.Invitation)
	return nil
}

// SaveInvitations persists a batch, used to apply a reconciled view
func (r *memoryRepository) SaveInvitations(ctx context.Context, input *SaveInvitationsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range input.Invitations {
		if inv == nil || inv.ID == "" {
			return errors.New("invitation and invitation ID cannot be empty")
		}
		r.invitations[inv.ID] = cloneInvitation(inv)
	}
	return nil
}
