package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	messageRepo "github.com/dayspring/gather/internal/repositories/message"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	"github.com/dayspring/gather/internal/services/membership"
)

// defaultMaxParticipants applies when neither the request nor the
// configuration names a capacity
const defaultMaxParticipants = 10

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	messageRepo   messageRepo.Repository
	sessionRemote sessionRepo.Remote
	messageRemote messageRepo.Remote
	membership    membership.Service

	defaultCapacity int

	clock clock.Clock
	uuid  uuid.UUID
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.MessageRepo == nil {
		return nil, ErrNilMessageRepo
	}
	if cfg.Membership == nil {
		return nil, ErrNilMembership
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	capacity := cfg.DefaultMaxParticipants
	if capacity <= 0 {
		capacity = defaultMaxParticipants
	}

	return &service{
		sessionRepo:     cfg.SessionRepo,
		messageRepo:     cfg.MessageRepo,
		sessionRemote:   cfg.SessionRemote,
		messageRemote:   cfg.MessageRemote,
		membership:      cfg.Membership,
		defaultCapacity: capacity,
		clock:           cfg.Clock,
		uuid:            cfg.UUID,
	}, nil
}

// CreateSession creates a session and seats the host as its first
// participant. The session save and the host join form one local unit;
// a failed join removes the session again.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input.Title == "" {
		return nil, ErrMissingTitle
	}
	if input.HostID == "" {
		return nil, ErrMissingHost
	}

	now := s.clock.Now()

	start := input.StartTime
	if start.IsZero() {
		start = now
	}

	capacity := input.MaxParticipants
	if capacity <= 0 {
		capacity = s.defaultCapacity
	}

	sess := &models.Session{
		ID:              s.uuid.NewUUID(),
		Title:           input.Title,
		Details:         input.Details,
		HostID:          input.HostID,
		StartTime:       start,
		Active:          true,
		MaxParticipants: capacity,
		Category:        input.Category,
		Tags:            input.Tags,
		Private:         input.Private,
		UpdatedAt:       now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	joined, err := s.membership.JoinSession(ctx, &membership.JoinSessionInput{
		SessionID: sess.ID,
		UserID:    input.HostID,
		UserName:  input.HostName,
		Host:      true,
	})
	if err != nil {
		// A session without its host is not observable
		if delErr := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
			SessionID: sess.ID,
		}); delErr != nil {
			zap.S().Errorw("failed to remove session after host join failure",
				"session_id", sess.ID, "error", delErr)
		}
		return nil, err
	}

	s.systemMessage(ctx, joined.Session, fmt.Sprintf("%s started the session", input.HostName))
	s.replicateSession(joined.Session)

	return &CreateSessionOutput{
		Session: joined.Session,
		Host:    joined.Participant,
	}, nil
}

// EndSession ends a live session. Only the host may end it; ending is
// terminal and never reversed.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if sess.HostID != input.UserID {
		return nil, ErrNotHost
	}
	if !sess.Active {
		return nil, ErrSessionEnded
	}

	now := s.clock.Now()
	sess.Active = false
	sess.EndTime = &now
	sess.UpdatedAt = now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	s.systemMessage(ctx, sess, "The session has ended")
	s.replicateSession(sess)

	return &EndSessionOutput{Session: sess}, nil
}

// GetSession retrieves one session from the local view
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionOutput{Session: sess}, nil
}

// ListSessions retrieves the local session list
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}

// SendMessage appends a chat message to a live session's log
func (s *service) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}
	if input.Body == "" {
		return nil, ErrEmptyMessage
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !sess.Active {
		return nil, ErrSessionEnded
	}

	msgType := input.Type
	if msgType == "" {
		msgType = models.MessageTypeText
	}

	msg := &models.ChatMessage{
		ID:        s.uuid.NewUUID(),
		SessionID: sess.ID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Body:      input.Body,
		Timestamp: s.clock.Now(),
		Type:      msgType,
	}

	if err := s.messageRepo.SaveMessage(ctx, &messageRepo.SaveMessageInput{Message: msg}); err != nil {
		return nil, err
	}

	if !sess.Private {
		s.replicateMessage(msg)
	}

	return &SendMessageOutput{Message: msg}, nil
}

// ListMessages retrieves a session's chat log in chronological order
func (s *service) ListMessages(ctx context.Context, input *ListMessagesInput) (*ListMessagesOutput, error) {
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	messages, err := s.messageRepo.ListBySession(ctx, &messageRepo.ListBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &ListMessagesOutput{Messages: messages}, nil
}

// systemMessage appends an app-generated notice to the session's log,
// best-effort. A failed notice never fails the operation that raised it.
func (s *service) systemMessage(ctx context.Context, sess *models.Session, body string) {
	msg := &models.ChatMessage{
		ID:        s.uuid.NewUUID(),
		SessionID: sess.ID,
		Body:      body,
		Timestamp: s.clock.Now(),
		Type:      models.MessageTypeSystem,
	}

	if err := s.messageRepo.SaveMessage(ctx, &messageRepo.SaveMessageInput{Message: msg}); err != nil {
		zap.S().Warnw("failed to append system message", "session_id", sess.ID, "error", err)
		return
	}

	if !sess.Private {
		s.replicateMessage(msg)
	}
}

// replicateSession pushes the session to the shared store, fire-and-forget
func (s *service) replicateSession(sess *models.Session) {
	if s.sessionRemote == nil || sess.Private {
		return
	}

	pushed := *sess
	go func() {
		if err := s.sessionRemote.Upsert(context.Background(), &sessionRepo.UpsertInput{
			Session: &pushed,
		}); err != nil {
			zap.S().Warnw("session replication failed", "session_id", pushed.ID, "error", err)
		}
	}()
}

// replicateMessage pushes the message to the shared store, fire-and-forget
func (s *service) replicateMessage(msg *models.ChatMessage) {
	if s.messageRemote == nil {
		return
	}

	pushed := *msg
	go func() {
		if err := s.messageRemote.Upsert(context.Background(), &messageRepo.UpsertInput{
			Message: &pushed,
		}); err != nil {
			zap.S().Warnw("message replication failed", "message_id", pushed.ID, "error", err)
		}
	}()
}
