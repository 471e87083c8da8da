package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dayspring/gather/internal/models"
	"github.com/dayspring/gather/internal/services/membership"
	sessionSvc "github.com/dayspring/gather/internal/services/session"
	syncSvc "github.com/dayspring/gather/internal/services/sync"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"alive": true})
}

type createSessionRequest struct {
	HostID          string    `json:"hostId"`
	HostName        string    `json:"hostName"`
	Title           string    `json:"title"`
	Details         string    `json:"details"`
	StartTime       time.Time `json:"startTime"`
	MaxParticipants int       `json:"maxParticipants"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Private         bool      `json:"private"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.sessions.CreateSession(r.Context(), &sessionSvc.CreateSessionInput{
		HostID:          req.HostID,
		HostName:        req.HostName,
		Title:           req.Title,
		Details:         req.Details,
		StartTime:       req.StartTime,
		MaxParticipants: req.MaxParticipants,
		Category:        req.Category,
		Tags:            req.Tags,
		Private:         req.Private,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"session": viewSession(out.Session),
		"host":    viewParticipant(out.Host),
	})
}

// handleListSessions serves the local session list. The read doubles as
// a pull-to-refresh: a reconciliation is triggered but the response
// never waits on it.
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if h.sync != nil {
		if _, err := h.sync.SyncSessions(r.Context(), &syncSvc.SyncSessionsInput{}); err != nil {
			respondError(w, err)
			return
		}
	}

	out, err := h.sessions.ListSessions(r.Context(), &sessionSvc.ListSessionsInput{})
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]sessionView, 0, len(out.Sessions))
	for _, sess := range out.Sessions {
		views = append(views, viewSession(sess))
	}
	respondJSON(w, http.StatusOK, map[string]any{"sessions": views})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	h.refreshSession(r, sessionID)

	out, err := h.sessions.GetSession(r.Context(), &sessionSvc.GetSessionInput{SessionID: sessionID})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"session": viewSession(out.Session)})
}

type endSessionRequest struct {
	UserID string `json:"userId"`
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	var req endSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.sessions.EndSession(r.Context(), &sessionSvc.EndSessionInput{
		SessionID: mux.Vars(r)["sessionID"],
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"session": viewSession(out.Session)})
}

type joinSessionRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

func (h *Handler) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sessionID := mux.Vars(r)["sessionID"]
	out, err := h.membership.JoinSession(r.Context(), &membership.JoinSessionInput{
		SessionID: sessionID,
		UserID:    req.UserID,
		UserName:  req.UserName,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	h.announce(r, out.Session, fmt.Sprintf("%s joined the session", req.UserName))

	respondJSON(w, http.StatusOK, map[string]any{
		"session":     viewSession(out.Session),
		"participant": viewParticipant(out.Participant),
	})
}

func (h *Handler) handleLeaveSession(w http.ResponseWriter, r *http.Request) {
	var req joinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sessionID := mux.Vars(r)["sessionID"]
	out, err := h.membership.LeaveSession(r.Context(), &membership.LeaveSessionInput{
		SessionID: sessionID,
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	h.announce(r, out.Session, fmt.Sprintf("%s left the session", req.UserName))

	respondJSON(w, http.StatusOK, map[string]any{"session": viewSession(out.Session)})
}

func (h *Handler) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	if h.sync != nil {
		if _, err := h.sync.SyncParticipants(r.Context(), &syncSvc.SyncParticipantsInput{
			SessionID: sessionID,
		}); err != nil {
			respondError(w, err)
			return
		}
	}

	out, err := h.membership.ActiveParticipants(r.Context(), &membership.ActiveParticipantsInput{
		SessionID: sessionID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]participantView, 0, len(out.Participants))
	for _, p := range out.Participants {
		views = append(views, viewParticipant(p))
	}
	respondJSON(w, http.StatusOK, map[string]any{"participants": views})
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	if h.sync != nil {
		if _, err := h.sync.SyncMessages(r.Context(), &syncSvc.SyncMessagesInput{
			SessionID: sessionID,
		}); err != nil {
			respondError(w, err)
			return
		}
	}

	out, err := h.sessions.ListMessages(r.Context(), &sessionSvc.ListMessagesInput{SessionID: sessionID})
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]messageView, 0, len(out.Messages))
	for _, m := range out.Messages {
		views = append(views, viewMessage(m))
	}
	respondJSON(w, http.StatusOK, map[string]any{"messages": views})
}

type sendMessageRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Body     string `json:"body"`
	Type     string `json:"type"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sessionID := mux.Vars(r)["sessionID"]
	out, err := h.sessions.SendMessage(r.Context(), &sessionSvc.SendMessageInput{
		SessionID: sessionID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Body:      req.Body,
		Type:      models.MessageType(req.Type),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	h.hub.Broadcast(sessionID, viewMessage(out.Message))

	respondJSON(w, http.StatusCreated, map[string]any{"message": viewMessage(out.Message)})
}

// refreshSession triggers the per-session reconciliations behind a get,
// best-effort
func (h *Handler) refreshSession(r *http.Request, sessionID string) {
	if h.sync == nil || sessionID == "" {
		return
	}

	ctx := r.Context()
	h.sync.SyncParticipants(ctx, &syncSvc.SyncParticipantsInput{SessionID: sessionID})
	h.sync.SyncInvitations(ctx, &syncSvc.SyncInvitationsInput{SessionID: sessionID})
	h.sync.SyncMessages(ctx, &syncSvc.SyncMessagesInput{SessionID: sessionID})
}

// announce appends a system notice to the session log and pushes it to
// connected chat clients. Best-effort: a failed notice never fails the
// request that raised it.
func (h *Handler) announce(r *http.Request, sess *models.Session, body string) {
	out, err := h.sessions.SendMessage(r.Context(), &sessionSvc.SendMessageInput{
		SessionID: sess.ID,
		Body:      body,
		Type:      models.MessageTypeSystem,
	})
	if err != nil {
		return
	}

	h.hub.Broadcast(sess.ID, viewMessage(out.Message))
}
