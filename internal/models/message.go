package models

import (
	"time"
)

// MessageType categorizes a chat message within a session
type MessageType string

const (
	// MessageTypeText is an ordinary chat message
	MessageTypeText MessageType = "text"

	// MessageTypePrayer is a prayer request or prayer text
	MessageTypePrayer MessageType = "prayer"

	// MessageTypeScripture is a shared scripture reference or passage
	MessageTypeScripture MessageType = "scripture"

	// MessageTypeSystem is an app-generated notice (joins, leaves, session end)
	MessageTypeSystem MessageType = "system"
)

// ChatMessage is one entry in a session's append-only chat log.
// Messages are immutable once created.
type ChatMessage struct {
	// ID is the unique identifier for this message
	ID string

	// SessionID is the session the message belongs to
	SessionID string

	// UserID is the author, empty for system messages
	UserID string

	// UserName is the author's display name at send time
	UserName string

	// Body is the message text
	Body string

	// Timestamp is when the message was created
	Timestamp time.Time

	// Type is the message category
	Type MessageType
}

// MergeID identifies the message during reconciliation.
func (m *ChatMessage) MergeID() string {
	return m.ID
}

// RecencyKey is the reconciliation timestamp. Messages are immutable, so
// this only ever breaks ties between identical copies.
func (m *ChatMessage) RecencyKey() time.Time {
	return m.Timestamp
}
