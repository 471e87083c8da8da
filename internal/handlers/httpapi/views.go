package httpapi

import (
	"time"

	"github.com/dayspring/gather/internal/models"
)

type sessionView struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Details             string     `json:"details,omitempty"`
	HostID              string     `json:"hostId"`
	StartTime           time.Time  `json:"startTime"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	Active              bool       `json:"active"`
	MaxParticipants     int        `json:"maxParticipants"`
	CurrentParticipants int        `json:"currentParticipants"`
	Category            string     `json:"category,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	Private             bool       `json:"private"`
}

func viewSession(s *models.Session) sessionView {
	return sessionView{
		ID:                  s.ID,
		Title:               s.Title,
		Details:             s.Details,
		HostID:              s.HostID,
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		Active:              s.Active,
		MaxParticipants:     s.MaxParticipants,
		CurrentParticipants: s.CurrentParticipants,
		Category:            s.Category,
		Tags:                s.Tags,
		Private:             s.Private,
	}
}

type participantView struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	UserName string     `json:"userName"`
	JoinedAt time.Time  `json:"joinedAt"`
	LeftAt   *time.Time `json:"leftAt,omitempty"`
	Host     bool       `json:"host"`
	Active   bool       `json:"active"`
}

func viewParticipant(p *models.Participant) participantView {
	return participantView{
		ID:       p.ID,
		UserID:   p.UserID,
		UserName: p.UserName,
		JoinedAt: p.JoinedAt,
		LeftAt:   p.LeftAt,
		Host:     p.Host,
		Active:   p.Active,
	}
}

type invitationView struct {
	ID           string     `json:"id"`
	SessionID    string     `json:"sessionId"`
	SessionTitle string     `json:"sessionTitle"`
	HostName     string     `json:"hostName"`
	InviteCode   string     `json:"inviteCode"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	RespondedAt  *time.Time `json:"respondedAt,omitempty"`
}

func viewInvitation(inv *models.Invitation) invitationView {
	return invitationView{
		ID:           inv.ID,
		SessionID:    inv.SessionID,
		SessionTitle: inv.SessionTitle,
		HostName:     inv.HostName,
		InviteCode:   inv.InviteCode,
		Status:       string(inv.Status),
		CreatedAt:    inv.CreatedAt,
		ExpiresAt:    inv.ExpiresAt,
		RespondedAt:  inv.RespondedAt,
	}
}

type messageView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
}

func viewMessage(m *models.ChatMessage) messageView {
	return messageView{
		ID:        m.ID,
		SessionID: m.SessionID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Body:      m.Body,
		Timestamp: m.Timestamp,
		Type:      string(m.Type),
	}
}
