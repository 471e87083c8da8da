package membership

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	participantRepo "github.com/dayspring/gather/internal/repositories/participant"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo     sessionRepo.Repository
	participantRepo participantRepo.Repository

	sessionRemote     sessionRepo.Remote
	participantRemote participantRepo.Remote

	clock clock.Clock
	uuid  uuid.UUID
}

// New creates a new membership service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:       cfg.SessionRepo,
		participantRepo:   cfg.ParticipantRepo,
		sessionRemote:     cfg.SessionRemote,
		participantRemote: cfg.ParticipantRemote,
		clock:             cfg.Clock,
		uuid:              cfg.UUID,
	}, nil
}

// JoinSession adds a user to a session. The capacity check counts the
// active membership set rather than trusting the cached counter, and the
// participant insert plus counter update form one local atomic unit: a
// failed session save rolls the insert back.
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
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

	existing, err := s.participantRepo.ListBySession(ctx, &participantRepo.ListBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	active := 0
	for _, p := range existing {
		if !p.Active {
			continue
		}
		active++
		if p.UserID == input.UserID {
			return nil, ErrAlreadyMember
		}
	}

	// Reject, never clamp
	if active >= sess.MaxParticipants {
		return nil, ErrSessionFull
	}

	now := s.clock.Now()
	joined := &models.Participant{
		ID:        s.uuid.NewUUID(),
		SessionID: input.SessionID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		JoinedAt:  now,
		Host:      input.Host,
		Active:    true,
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: joined,
	}); err != nil {
		return nil, err
	}

	sess.CurrentParticipants = active + 1
	sess.UpdatedAt = now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		// Roll the insert back so the store and model never diverge
		if delErr := s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
			ParticipantID: joined.ID,
		}); delErr != nil {
			zap.S().Errorw("failed to roll back participant insert",
				"participant_id", joined.ID, "error", delErr)
		}
		return nil, err
	}

	s.replicate(sess, joined)

	return &JoinSessionOutput{
		Participant: joined,
		Session:     sess,
	}, nil
}

// LeaveSession deactivates a user's membership record and recounts
func (s *service) LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	existing, err := s.participantRepo.ListBySession(ctx, &participantRepo.ListBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	var leaving *models.Participant
	active := 0
	for _, p := range existing {
		if !p.Active {
			continue
		}
		active++
		if p.UserID == input.UserID {
			leaving = p
		}
	}

	if leaving == nil {
		return nil, ErrNotMember
	}

	now := s.clock.Now()
	leaving.Active = false
	leaving.LeftAt = &now

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: leaving,
	}); err != nil {
		return nil, err
	}

	if active > 0 {
		active--
	}
	sess.CurrentParticipants = active
	sess.UpdatedAt = now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		// Restore the membership row so the store and model never diverge
		leaving.Active = true
		leaving.LeftAt = nil
		if saveErr := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
			Participant: leaving,
		}); saveErr != nil {
			zap.S().Errorw("failed to roll back participant leave",
				"participant_id", leaving.ID, "error", saveErr)
		}
		return nil, err
	}

	s.replicate(sess, leaving)

	return &LeaveSessionOutput{
		Session: sess,
	}, nil
}

// ActiveParticipants lists the users currently in a session
func (s *service) ActiveParticipants(ctx context.Context, input *ActiveParticipantsInput) (*ActiveParticipantsOutput, error) {
	existing, err := s.participantRepo.ListBySession(ctx, &participantRepo.ListBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	participants := make([]*models.Participant, 0, len(existing))
	for _, p := range existing {
		if p.Active {
			participants = append(participants, p)
		}
	}

	return &ActiveParticipantsOutput{
		Participants: participants,
	}, nil
}

// ReconcileCount realigns the session's cached counter with the counted
// membership set. Two devices racing for the last slot can both locally
// succeed; the host's next reconciliation settles the counter here.
func (s *service) ReconcileCount(ctx context.Context, input *ReconcileCountInput) (*ReconcileCountOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	out, err := s.ActiveParticipants(ctx, &ActiveParticipantsInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	counted := len(out.Participants)
	if sess.CurrentParticipants != counted {
		sess.CurrentParticipants = counted
		sess.UpdatedAt = s.clock.Now()
		if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session: sess,
		}); err != nil {
			return nil, err
		}
		s.replicate(sess, nil)
	}

	return &ReconcileCountOutput{
		Count: counted,
	}, nil
}

// replicate pushes copies of the mutated rows to the shared store,
// fire-and-forget; the caller keeps the originals. The push is not part
// of the local atomic unit; the next reconciliation pass repairs
// anything a failed push left behind.
func (s *service) replicate(sess *models.Session, p *models.Participant) {
	if sess.Private {
		return
	}

	pushedSess := *sess
	var pushedPart *models.Participant
	if p != nil {
		cp := *p
		pushedPart = &cp
	}

	go func() {
		ctx := context.Background()

		if s.sessionRemote != nil {
			if err := s.sessionRemote.Upsert(ctx, &sessionRepo.UpsertInput{Session: &pushedSess}); err != nil {
				zap.S().Warnw("session replication failed", "session_id", pushedSess.ID, "error", err)
			}
		}

		if s.participantRemote != nil && pushedPart != nil {
			if err := s.participantRemote.Upsert(ctx, &participantRepo.UpsertInput{Participant: pushedPart}); err != nil {
				zap.S().Warnw("participant replication failed", "participant_id", pushedPart.ID, "error", err)
			}
		}
	}()
}
