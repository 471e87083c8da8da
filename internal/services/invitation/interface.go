package invitation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dayspring/gather/internal/services/invitation Service

import "context"

// Service manages the invitation lifecycle: pending is the only live
// state, and accepted, declined and expired are all final. A host
// resending an invitation creates a new row rather than reopening a
// terminal one.
type Service interface {
	// CreateInvitation mints a pending invitation for a session. The
	// target may be a user, an email address, or nobody (code-only).
	CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*CreateInvitationOutput, error)

	// ResolveInvitation finds an invitation by code, case-insensitively,
	// without mutating anything
	ResolveInvitation(ctx context.Context, input *ResolveInvitationInput) (*ResolveInvitationOutput, error)

	// AcceptInvitation redeems a pending invitation and joins the
	// session as one local atomic unit
	AcceptInvitation(ctx context.Context, input *AcceptInvitationInput) (*AcceptInvitationOutput, error)

	// DeclineInvitation marks a pending invitation declined
	DeclineInvitation(ctx context.Context, input *DeclineInvitationInput) (*DeclineInvitationOutput, error)
}
