package invitation

import "github.com/dayspring/gather/internal/models"

type GetInvitationInput struct {
	InvitationID string
}

type GetByCodeInput struct {
	Code string
}

type ListBySessionInput struct {
	SessionID string
}

type SaveInvitationInput struct {
	Invitation *models.Invitation
}

type SaveInvitationsInput struct {
	Invitations []*models.Invitation
}

type FetchAllInput struct {
	SessionID string
}

type UpsertInput struct {
	Invitation *models.Invitation
}
