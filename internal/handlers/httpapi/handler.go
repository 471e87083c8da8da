// Package httpapi exposes the collaboration services over HTTP, with a
// websocket feed for live session chat.
package httpapi

import (
	"errors"

	"github.com/gorilla/mux"

	invitationSvc "github.com/dayspring/gather/internal/services/invitation"
	"github.com/dayspring/gather/internal/services/membership"
	sessionSvc "github.com/dayspring/gather/internal/services/session"
	syncSvc "github.com/dayspring/gather/internal/services/sync"
)

// Handler carries the service dependencies for the HTTP surface
type Handler struct {
	sessions    sessionSvc.Service
	membership  membership.Service
	invitations invitationSvc.Service
	sync        syncSvc.Service
	hub         *Hub
}

// Config holds the configuration for the HTTP handler
type Config struct {
	SessionService    sessionSvc.Service
	MembershipService membership.Service
	InvitationService invitationSvc.Service

	// SyncService is triggered on reads so a fetch doubles as a
	// pull-to-refresh. Optional: when nil, reads serve the local view
	// without triggering reconciliation.
	SyncService syncSvc.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if cfg.MembershipService == nil {
		return nil, errors.New("membership service cannot be nil")
	}
	if cfg.InvitationService == nil {
		return nil, errors.New("invitation service cannot be nil")
	}

	return &Handler{
		sessions:    cfg.SessionService,
		membership:  cfg.MembershipService,
		invitations: cfg.InvitationService,
		sync:        cfg.SyncService,
		hub:         NewHub(),
	}, nil
}

// Router creates a mux router with all the routes registered
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.handleHealth).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/sessions", h.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions", h.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions/{sessionID}", h.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{sessionID}/end", h.handleEndSession).Methods("POST")
	api.HandleFunc("/sessions/{sessionID}/join", h.handleJoinSession).Methods("POST")
	api.HandleFunc("/sessions/{sessionID}/leave", h.handleLeaveSession).Methods("POST")
	api.HandleFunc("/sessions/{sessionID}/participants", h.handleListParticipants).Methods("GET")
	api.HandleFunc("/sessions/{sessionID}/messages", h.handleListMessages).Methods("GET")
	api.HandleFunc("/sessions/{sessionID}/messages", h.handleSendMessage).Methods("POST")
	api.HandleFunc("/sessions/{sessionID}/chat", h.handleChatSocket).Methods("GET")

	api.HandleFunc("/sessions/{sessionID}/invitations", h.handleCreateInvitation).Methods("POST")
	api.HandleFunc("/invitations/{inviteCode}", h.handleResolveInvitation).Methods("GET")
	api.HandleFunc("/invitations/{inviteCode}/accept", h.handleAcceptInvitation).Methods("POST")
	api.HandleFunc("/invitations/{inviteCode}/decline", h.handleDeclineInvitation).Methods("POST")

	// Deep link target: app://session/{sessionID}/code/{inviteCode}
	r.HandleFunc("/session/{sessionID}/code/{inviteCode}", h.handleDeepLink).Methods("GET")

	return r
}
