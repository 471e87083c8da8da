package participant

import "github.com/dayspring/gather/internal/models"

type GetParticipantInput struct {
	ParticipantID string
}

type ListBySessionInput struct {
	SessionID string
}

type SaveParticipantInput struct {
	Participant *models.Participant
}

type SaveParticipantsInput struct {
	Participants []*models.Participant
}

type DeleteParticipantInput struct {
	ParticipantID string
}

type FetchAllInput struct {
	SessionID string
}

type UpsertInput struct {
	Participant *models.Participant
}
