package message

import "github.com/dayspring/gather/internal/models"

type ListBySessionInput struct {
	SessionID string
}

type SaveMessageInput struct {
	Message *models.ChatMessage
}

type SaveMessagesInput struct {
	Messages []*models.ChatMessage
}

type DeleteMessageInput struct {
	MessageID string
}

type FetchAllInput struct {
	SessionID string
}

type UpsertInput struct {
	Message *models.ChatMessage
}
