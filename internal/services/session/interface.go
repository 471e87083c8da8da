package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dayspring/gather/internal/services/session Service

import "context"

// Service hosts live sessions: creating and ending them and carrying
// their chat log. Joining and leaving are the membership service's
// concern; this service owns the session record itself.
type Service interface {
	// CreateSession creates a session with the host as its first
	// participant
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// EndSession ends a session; only the host may end it
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// GetSession retrieves one session from the local view
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions retrieves the local session list
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// SendMessage appends a chat message to a live session
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// ListMessages retrieves a session's chat log in order
	ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error)
}
