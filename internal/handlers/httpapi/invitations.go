package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	invitationSvc "github.com/dayspring/gather/internal/services/invitation"
	syncSvc "github.com/dayspring/gather/internal/services/sync"
)

type createInvitationRequest struct {
	HostID        string `json:"hostId"`
	HostName      string `json:"hostName"`
	InvitedUserID string `json:"invitedUserId"`
	InvitedEmail  string `json:"invitedEmail"`
}

func (h *Handler) handleCreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.invitations.CreateInvitation(r.Context(), &invitationSvc.CreateInvitationInput{
		SessionID:     mux.Vars(r)["sessionID"],
		HostID:        req.HostID,
		HostName:      req.HostName,
		InvitedUserID: req.InvitedUserID,
		InvitedEmail:  req.InvitedEmail,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"invitation": viewInvitation(out.Invitation),
		"deepLink":   out.DeepLink,
	})
}

func (h *Handler) handleResolveInvitation(w http.ResponseWriter, r *http.Request) {
	out, err := h.invitations.ResolveInvitation(r.Context(), &invitationSvc.ResolveInvitationInput{
		Code: mux.Vars(r)["inviteCode"],
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"invitation": viewInvitation(out.Invitation),
		"valid":      out.Valid,
	})
}

type acceptInvitationRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

func (h *Handler) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	var req acceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.invitations.AcceptInvitation(r.Context(), &invitationSvc.AcceptInvitationInput{
		Code:     mux.Vars(r)["inviteCode"],
		UserID:   req.UserID,
		UserName: req.UserName,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	h.announce(r, out.Session, req.UserName+" joined the session")

	respondJSON(w, http.StatusOK, map[string]any{
		"invitation":  viewInvitation(out.Invitation),
		"participant": viewParticipant(out.Participant),
		"session":     viewSession(out.Session),
	})
}

func (h *Handler) handleDeclineInvitation(w http.ResponseWriter, r *http.Request) {
	out, err := h.invitations.DeclineInvitation(r.Context(), &invitationSvc.DeclineInvitationInput{
		Code: mux.Vars(r)["inviteCode"],
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"invitation": viewInvitation(out.Invitation)})
}

// handleDeepLink resolves the shareable link form carrying both the
// session and the code. The invitation's own session wins when the two
// disagree; a stale or re-shared link must not admit into an arbitrary
// session.
func (h *Handler) handleDeepLink(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	out, err := h.invitations.ResolveInvitation(r.Context(), &invitationSvc.ResolveInvitationInput{
		Code: vars["inviteCode"],
	})
	if err != nil {
		respondError(w, err)
		return
	}

	if h.sync != nil {
		h.sync.SyncInvitations(r.Context(), &syncSvc.SyncInvitationsInput{
			SessionID: out.Invitation.SessionID,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"invitation":           viewInvitation(out.Invitation),
		"valid":                out.Valid,
		"sessionId":            out.Invitation.SessionID,
		"linkedSessionMatches": out.Invitation.SessionID == vars["sessionID"],
	})
}
