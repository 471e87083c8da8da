package invitation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/invitecode"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	invitationRepo "github.com/dayspring/gather/internal/repositories/invitation"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	"github.com/dayspring/gather/internal/services/membership"
	"github.com/dayspring/gather/internal/services/notify"
)

// maxCodeAttempts bounds regeneration when a freshly minted code
// collides with a live invitation
const maxCodeAttempts = 5

// service implements the Service interface
type service struct {
	invitationRepo   invitationRepo.Repository
	sessionRepo      sessionRepo.Repository
	invitationRemote invitationRepo.Remote

	membership  membership.Service
	notifier    notify.Notifier
	emailSender notify.EmailSender

	codeGen invitecode.Generator
	clock   clock.Clock
	uuid    uuid.UUID
}

// New creates a new invitation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.InvitationRepo == nil {
		return nil, ErrNilInvitationRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Membership == nil {
		return nil, ErrNilMembership
	}
	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		invitationRepo:   cfg.InvitationRepo,
		sessionRepo:      cfg.SessionRepo,
		invitationRemote: cfg.InvitationRemote,
		membership:       cfg.Membership,
		notifier:         cfg.Notifier,
		emailSender:      cfg.EmailSender,
		codeGen:          cfg.CodeGenerator,
		clock:            cfg.Clock,
		uuid:             cfg.UUID,
	}, nil
}

// CreateInvitation mints a pending invitation with a fresh code and the
// default seven-day expiry. Creating an invitation does not reserve a
// capacity slot, but a session that is already full rejects immediately.
func (s *service) CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*CreateInvitationOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	active, err := s.membership.ActiveParticipants(ctx, &membership.ActiveParticipantsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}
	if len(active.Participants) >= sess.MaxParticipants {
		return nil, ErrSessionFull
	}

	code, err := s.mintCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	inv := &models.Invitation{
		ID:            s.uuid.NewUUID(),
		SessionID:     sess.ID,
		SessionTitle:  sess.Title,
		HostID:        input.HostID,
		HostName:      input.HostName,
		InvitedUserID: input.InvitedUserID,
		InvitedEmail:  input.InvitedEmail,
		InviteCode:    code,
		Status:        models.InvitationStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(models.DefaultInvitationTTL),
	}

	if err := s.invitationRepo.SaveInvitation(ctx, &invitationRepo.SaveInvitationInput{
		Invitation: inv,
	}); err != nil {
		return nil, err
	}

	if !sess.Private {
		s.replicate(inv)
	}
	s.deliver(inv)

	return &CreateInvitationOutput{
		Invitation: inv,
		DeepLink:   deepLink(inv),
	}, nil
}

// ResolveInvitation finds an invitation by code without mutating state
func (s *service) ResolveInvitation(ctx context.Context, input *ResolveInvitationInput) (*ResolveInvitationOutput, error) {
	inv, err := s.invitationRepo.GetByCode(ctx, &invitationRepo.GetByCodeInput{
		Code: input.Code,
	})
	if err != nil {
		if errors.Is(err, invitationRepo.ErrInvitationNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	return &ResolveInvitationOutput{
		Invitation: inv,
		Valid:      inv.Valid(s.clock.Now()),
	}, nil
}

// AcceptInvitation redeems a pending invitation: the join and the
// invitation transition form one local atomic unit, with the join
// compensated if the invitation write fails. The remote push happens
// afterward, best-effort, outside the atomic unit.
func (s *service) AcceptInvitation(ctx context.Context, input *AcceptInvitationInput) (*AcceptInvitationOutput, error) {
	inv, err := s.invitationRepo.GetByCode(ctx, &invitationRepo.GetByCodeInput{
		Code: input.Code,
	})
	if err != nil {
		if errors.Is(err, invitationRepo.ErrInvitationNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	now := s.clock.Now()
	if !inv.Valid(now) {
		if inv.Status == models.InvitationStatusPending {
			// Overdue but still marked pending: observe the expiry now
			inv.Status = models.InvitationStatusExpired
			if err := s.invitationRepo.SaveInvitation(ctx, &invitationRepo.SaveInvitationInput{
				Invitation: inv,
			}); err != nil {
				zap.S().Errorw("failed to persist observed expiry", "invitation_id", inv.ID, "error", err)
			}
			return nil, ErrInvitationExpired
		}
		if inv.Status == models.InvitationStatusExpired {
			return nil, ErrInvitationExpired
		}
		return nil, ErrInvitationResponded
	}

	joined, err := s.membership.JoinSession(ctx, &membership.JoinSessionInput{
		SessionID: inv.SessionID,
		UserID:    input.UserID,
		UserName:  input.UserName,
	})
	if err != nil {
		switch {
		case errors.Is(err, membership.ErrSessionFull):
			return nil, ErrSessionFull
		case errors.Is(err, membership.ErrAlreadyMember):
			return nil, ErrAlreadyMember
		case errors.Is(err, membership.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, membership.ErrSessionEnded):
			return nil, ErrSessionEnded
		}
		return nil, err
	}

	inv.Status = models.InvitationStatusAccepted
	inv.RespondedAt = &now

	if err := s.invitationRepo.SaveInvitation(ctx, &invitationRepo.SaveInvitationInput{
		Invitation: inv,
	}); err != nil {
		// Compensate the join so membership-without-accepted is never
		// left behind
		if _, leaveErr := s.membership.LeaveSession(ctx, &membership.LeaveSessionInput{
			SessionID: inv.SessionID,
			UserID:    input.UserID,
		}); leaveErr != nil {
			zap.S().Errorw("failed to compensate join after invitation save failure",
				"invitation_id", inv.ID, "error", leaveErr)
		}
		return nil, err
	}

	if !joined.Session.Private {
		s.replicate(inv)
	}

	if s.notifier != nil {
		go func() {
			if err := s.notifier.Notify(context.Background(), &notify.NotifyInput{
				UserID:  inv.HostID,
				Message: fmt.Sprintf("%s joined %q", input.UserName, inv.SessionTitle),
			}); err != nil {
				zap.S().Warnw("accept notification failed", "host_id", inv.HostID, "error", err)
			}
		}()
	}

	return &AcceptInvitationOutput{
		Invitation:  inv,
		Participant: joined.Participant,
		Session:     joined.Session,
	}, nil
}

// DeclineInvitation marks a pending invitation declined. Terminal
// invitations are returned unchanged; no code path reopens them.
func (s *service) DeclineInvitation(ctx context.Context, input *DeclineInvitationInput) (*DeclineInvitationOutput, error) {
	inv, err := s.invitationRepo.GetByCode(ctx, &invitationRepo.GetByCodeInput{
		Code: input.Code,
	})
	if err != nil {
		if errors.Is(err, invitationRepo.ErrInvitationNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	if inv.Terminal() {
		return &DeclineInvitationOutput{Invitation: inv}, nil
	}

	now := s.clock.Now()
	inv.Status = models.InvitationStatusDeclined
	inv.RespondedAt = &now

	if err := s.invitationRepo.SaveInvitation(ctx, &invitationRepo.SaveInvitationInput{
		Invitation: inv,
	}); err != nil {
		return nil, err
	}

	if s.invitationRemote != nil {
		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
			SessionID: inv.SessionID,
		})
		if err != nil {
			// Privacy unknown without the session; the decline stays
			// device-local
			zap.S().Warnw("session lookup failed on decline, skipping replication",
				"invitation_id", inv.ID, "session_id", inv.SessionID, "error", err)
		} else if !sess.Private {
			s.replicate(inv)
		}
	}

	return &DeclineInvitationOutput{Invitation: inv}, nil
}

// mintCode generates an invite code, regenerating while the code is
// held by a live invitation
func (s *service) mintCode(ctx context.Context) (string, error) {
	now := s.clock.Now()
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.codeGen.Generate()

		existing, err := s.invitationRepo.GetByCode(ctx, &invitationRepo.GetByCodeInput{Code: code})
		if err != nil {
			if errors.Is(err, invitationRepo.ErrInvitationNotFound) {
				return code, nil
			}
			return "", err
		}
		if !existing.Valid(now) {
			// A dead code may be reused; it can no longer re-validate
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

// replicate pushes the invitation to the shared store, fire-and-forget
func (s *service) replicate(inv *models.Invitation) {
	if s.invitationRemote == nil {
		return
	}

	pushed := *inv
	go func() {
		if err := s.invitationRemote.Upsert(context.Background(), &invitationRepo.UpsertInput{
			Invitation: &pushed,
		}); err != nil {
			zap.S().Warnw("invitation replication failed", "invitation_id", pushed.ID, "error", err)
		}
	}()
}

// deliver sends the invitation to its target, fire-and-forget
func (s *service) deliver(inv *models.Invitation) {
	if inv.InvitedEmail != "" && s.emailSender != nil {
		sent := *inv
		go func() {
			if err := s.emailSender.SendInvite(context.Background(), &notify.SendInviteInput{
				ToEmail:      sent.InvitedEmail,
				HostName:     sent.HostName,
				SessionTitle: sent.SessionTitle,
				InviteCode:   sent.InviteCode,
			}); err != nil {
				zap.S().Warnw("invite email failed", "invitation_id", sent.ID, "error", err)
			}
		}()
	}

	if inv.InvitedUserID != "" && s.notifier != nil {
		sent := *inv
		go func() {
			if err := s.notifier.Notify(context.Background(), &notify.NotifyInput{
				UserID:  sent.InvitedUserID,
				Message: fmt.Sprintf("%s invited you to %q", sent.HostName, sent.SessionTitle),
			}); err != nil {
				zap.S().Warnw("invite notification failed", "invitation_id", sent.ID, "error", err)
			}
		}()
	}
}

func deepLink(inv *models.Invitation) string {
	return fmt.Sprintf("app://session/%s/code/%s", inv.SessionID, inv.InviteCode)
}
