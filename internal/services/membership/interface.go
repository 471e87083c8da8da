package membership

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dayspring/gather/internal/services/membership Service

import "context"

// Service enforces session capacity and host/participant invariants.
// The session's participant counter is treated as a cache of the
// membership set and is recounted on every mutation.
type Service interface {
	// JoinSession adds a user to a session, rejecting when full
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// LeaveSession deactivates a user's membership record
	LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error)

	// ActiveParticipants lists the users currently in a session
	ActiveParticipants(ctx context.Context, input *ActiveParticipantsInput) (*ActiveParticipantsOutput, error)

	// ReconcileCount realigns a session's cached participant counter
	// with the counted membership set
	ReconcileCount(ctx context.Context, input *ReconcileCountInput) (*ReconcileCountOutput, error)
}
