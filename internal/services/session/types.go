package session

import (
	"time"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	messageRepo "github.com/dayspring/gather/internal/repositories/message"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	"github.com/dayspring/gather/internal/services/membership"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	MessageRepo messageRepo.Repository

	// Remote stores for public replication. Optional: when nil, the
	// session stays device-local.
	SessionRemote sessionRepo.Remote
	MessageRemote messageRepo.Remote

	// Service dependencies
	Membership membership.Service

	// DefaultMaxParticipants applies when a create request carries no
	// explicit capacity. Zero falls back to the package default.
	DefaultMaxParticipants int

	// Common dependencies
	Clock clock.Clock
	UUID  uuid.UUID
}

type CreateSessionInput struct {
	HostID   string
	HostName string
	Title    string
	Details  string

	// StartTime defaults to now when zero
	StartTime time.Time

	// MaxParticipants defaults to the configured capacity when zero
	MaxParticipants int

	Category string
	Tags     []string
	Private  bool
}

type CreateSessionOutput struct {
	Session *models.Session

	// Host is the host's own membership row
	Host *models.Participant
}

type EndSessionInput struct {
	SessionID string

	// UserID must match the session's host
	UserID string
}

type EndSessionOutput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.Session
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type SendMessageInput struct {
	SessionID string
	UserID    string
	UserName  string
	Body      string

	// Type defaults to text
	Type models.MessageType
}

type SendMessageOutput struct {
	Message *models.ChatMessage
}

type ListMessagesInput struct {
	SessionID string
}

type ListMessagesOutput struct {
	Messages []*models.ChatMessage
}
