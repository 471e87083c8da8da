package session

import "github.com/dayspring/gather/internal/models"

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type SaveSessionInput struct {
	Session *models.Session
}

type SaveSessionsInput struct {
	Sessions []*models.Session
}

type DeleteSessionInput struct {
	SessionID string
}

type FetchAllInput struct {
}

type UpsertInput struct {
	Session *models.Session
}
