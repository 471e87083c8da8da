package invitation

import (
	"github.com/dayspring/gather/internal/common/clock"
	"github.com/dayspring/gather/internal/common/invitecode"
	"github.com/dayspring/gather/internal/common/uuid"
	"github.com/dayspring/gather/internal/models"
	invitationRepo "github.com/dayspring/gather/internal/repositories/invitation"
	sessionRepo "github.com/dayspring/gather/internal/repositories/session"
	"github.com/dayspring/gather/internal/services/membership"
	"github.com/dayspring/gather/internal/services/notify"
)

// Config holds configuration for the invitation service
type Config struct {
	// Repository dependencies
	InvitationRepo invitationRepo.Repository
	SessionRepo    sessionRepo.Repository

	// InvitationRemote replicates invitations for public sessions.
	// Optional: when nil, invitations stay local.
	InvitationRemote invitationRepo.Remote

	// Service dependencies
	Membership membership.Service

	// Notifier delivers accept notifications to the host. Optional.
	Notifier notify.Notifier

	// EmailSender delivers email-targeted invitations. Optional.
	EmailSender notify.EmailSender

	// Common dependencies
	CodeGenerator invitecode.Generator
	Clock         clock.Clock
	UUID          uuid.UUID
}

type CreateInvitationInput struct {
	SessionID string
	HostID    string
	HostName  string

	// At most one of InvitedUserID and InvitedEmail is set; both empty
	// means a code-only invitation
	InvitedUserID string
	InvitedEmail  string
}

type CreateInvitationOutput struct {
	Invitation *models.Invitation

	// DeepLink is the app routing link carrying the session and code
	DeepLink string
}

type ResolveInvitationInput struct {
	Code string
}

type ResolveInvitationOutput struct {
	Invitation *models.Invitation

	// Valid reports redeemability at resolution time; expiry is
	// wall-clock relative, so it must be re-checked at use time
	Valid bool
}

type AcceptInvitationInput struct {
	Code     string
	UserID   string
	UserName string
}

type AcceptInvitationOutput struct {
	Invitation  *models.Invitation
	Participant *models.Participant
	Session     *models.Session
}

type DeclineInvitationInput struct {
	Code string
}

type DeclineInvitationOutput struct {
	Invitation *models.Invitation
}
