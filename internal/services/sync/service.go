package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/models"
	invitationRepo "github.com/dayspring/gather/internal/repositories/invitation"
	messageRepo "github.com/dayspring/gather/internal/repositories/message"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	invitationSvc "github.com/dayspring/gather/internal/services/invitation"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	participantRepo participantRepo.Repository
	invitationRepo  invitationRepo.Repository
	messageRepo     messageRepo.Repository

	sessionRemote     sessionRepo.Remote
	participantRemote participantRepo.Remote
	invitationRemote  invitationRepo.Remote
	messageRemote     messageRepo.Remote

	clock clock.Clock
	sched *Scheduler
}

// New creates a new sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.SessionRemote == nil {
		return nil, ErrNilSessionRemote
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.ParticipantRemote == nil {
		return nil, ErrNilParticipantRemote
	}
	if cfg.InvitationRepo == nil {
		return nil, ErrNilInvitationRepo
	}
	if cfg.InvitationRemote == nil {
		return nil, ErrNilInvitationRemote
	}
	if cfg.MessageRepo == nil {
		return nil, ErrNilMessageRepo
	}
	if cfg.MessageRemote == nil {
		return nil, ErrNilMessageRemote
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		sessionRepo:       cfg.SessionRepo,
		participantRepo:   cfg.ParticipantRepo,
		invitationRepo:    cfg.InvitationRepo,
		messageRepo:       cfg.MessageRepo,
		sessionRemote:     cfg.SessionRemote,
		participantRemote: cfg.ParticipantRemote,
		invitationRemote:  cfg.InvitationRemote,
		messageRemote:     cfg.MessageRemote,
		clock:             cfg.Clock,
		sched:             NewScheduler(),
	}, nil
}

// SyncSessions reconciles the public session list
func (s *service) SyncSessions(ctx context.Context, input *SyncSessionsInput) (*SyncSessionsOutput, error) {
	// The run outlives the triggering request
	s.sched.Trigger(context.WithoutCancel(ctx), "sessions", s.reconcileSessions)
	return &SyncSessionsOutput{}, nil
}

// SyncParticipants reconciles one session's membership records
func (s *service) SyncParticipants(ctx context.Context, input *SyncParticipantsInput) (*SyncParticipantsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sessionID := input.SessionID
	s.sched.Trigger(context.WithoutCancel(ctx), fmt.Sprintf("participants:%s", sessionID), func(ctx context.Context) {
		s.reconcileParticipants(ctx, sessionID)
	})
	return &SyncParticipantsOutput{}, nil
}

// SyncInvitations reconciles one session's invitations
func (s *service) SyncInvitations(ctx context.Context, input *SyncInvitationsInput) (*SyncInvitationsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sessionID := input.SessionID
	s.sched.Trigger(context.WithoutCancel(ctx), fmt.Sprintf("invitations:%s", sessionID), func(ctx context.Context) {
		s.reconcileInvitations(ctx, sessionID)
	})
	return &SyncInvitationsOutput{}, nil
}

// SyncMessages reconciles one session's chat log
func (s *service) SyncMessages(ctx context.Context, input *SyncMessagesInput) (*SyncMessagesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	sessionID := input.SessionID
	s.sched.Trigger(context.WithoutCancel(ctx), fmt.Sprintf("messages:%s", sessionID), func(ctx context.Context) {
		s.reconcileMessages(ctx, sessionID)
	})
	return &SyncMessagesOutput{}, nil
}

// Idle reports whether no reconciliation is in flight for the given key
func (s *service) Idle(key string) bool {
	return s.sched.Idle(key)
}

func (s *service) reconcileSessions(ctx context.Context) {
	remote, err := s.sessionRemote.FetchAll(ctx, &sessionRepo.FetchAllInput{})
	if err != nil {
		// Degrade to the local-only view
		zap.S().Warnw("session sync failed, keeping local view", "error", err)
		return
	}

	local, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		zap.S().Errorw("failed to read local sessions", "error", err)
		return
	}

	merged := Merge(local, remote, func(a, b *models.Session) bool {
		return a.StartTime.After(b.StartTime)
	})

	if err := s.sessionRepo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{Sessions: merged}); err != nil {
		zap.S().Errorw("failed to apply reconciled sessions", "error", err)
	}
}

func (s *service) reconcileParticipants(ctx context.Context, sessionID string) {
	remote, err := s.participantRemote.FetchAll(ctx, &participantRepo.FetchAllInput{SessionID: sessionID})
	if err != nil {
		zap.S().Warnw("participant sync failed, keeping local view", "session_id", sessionID, "error", err)
		return
	}

	local, err := s.participantRepo.ListBySession(ctx, &participantRepo.ListBySessionInput{SessionID: sessionID})
	if err != nil {
		zap.S().Errorw("failed to read local participants", "session_id", sessionID, "error", err)
		return
	}

	merged := Merge(local, remote, func(a, b *models.Participant) bool {
		return a.JoinedAt.Before(b.JoinedAt)
	})

	if err := s.participantRepo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{Participants: merged}); err != nil {
		zap.S().Errorw("failed to apply reconciled participants", "session_id", sessionID, "error", err)
		return
	}

	s.reconcileParticipantCount(ctx, sessionID, merged)
}

// reconcileParticipantCount realigns the session's cached participant
// counter with the authoritative reconciled membership set.
func (s *service) reconcileParticipantCount(ctx context.Context, sessionID string, participants []*models.Participant) {
	active := 0
	for _, p := range participants {
		if p.Active {
			active++
		}
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		// The session may not have been synced to this device yet
		zap.S().Debugw("skipping participant count reconciliation", "session_id", sessionID, "error", err)
		return
	}

	if sess.CurrentParticipants == active {
		return
	}

	zap.S().Infow("reconciling participant count",
		"session_id", sessionID,
		"cached", sess.CurrentParticipants,
		"counted", active,
	)

	sess.CurrentParticipants = active
	sess.UpdatedAt = s.clock.Now()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		zap.S().Errorw("failed to save reconciled participant count", "session_id", sessionID, "error", err)
	}
}

func (s *service) reconcileInvitations(ctx context.Context, sessionID string) {
	remote, err := s.invitationRemote.FetchAll(ctx, &invitationRepo.FetchAllInput{SessionID: sessionID})
	if err != nil {
		zap.S().Warnw("invitation sync failed, keeping local view", "session_id", sessionID, "error", err)
		return
	}

	local, err := s.invitationRepo.ListBySession(ctx, &invitationRepo.ListBySessionInput{SessionID: sessionID})
	if err != nil {
		zap.S().Errorw("failed to read local invitations", "session_id", sessionID, "error", err)
		return
	}

	merged := Merge(local, remote, func(a, b *models.Invitation) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	// Expiry is observed lazily on each pass, never pushed by a timer
	merged = invitationSvc.SweepExpired(merged, s.clock.Now())

	if err := s.invitationRepo.SaveInvitations(ctx, &invitationRepo.SaveInvitationsInput{Invitations: merged}); err != nil {
		zap.S().Errorw("failed to apply reconciled invitations", "session_id", sessionID, "error", err)
	}
}

func (s *service) reconcileMessages(ctx context.Context, sessionID string) {
	remote, err := s.messageRemote.FetchAll(ctx, &messageRepo.FetchAllInput{SessionID: sessionID})
	if err != nil {
		zap.S().Warnw("message sync failed, keeping local view", "session_id", sessionID, "error", err)
		return
	}

	local, err := s.messageRepo.ListBySession(ctx, &messageRepo.ListBySessionInput{SessionID: sessionID})
	if err != nil {
		zap.S().Errorw("failed to read local messages", "session_id", sessionID, "error", err)
		return
	}

	merged := Merge(local, remote, func(a, b *models.ChatMessage) bool {
		return a.Timestamp.Before(b.Timestamp)
	})

	if err := s.messageRepo.SaveMessages(ctx, &messageRepo.SaveMessagesInput{Messages: merged}); err != nil {
		zap.S().Errorw("failed to apply reconciled messages", "session_id", sessionID, "error", err)
	}
}
