package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	invitationSvc "github.com/dayspring/gather/internal/services/invitation"
	"github.com/dayspring/gather/internal/services/membership"
	sessionSvc "github.com/dayspring/gather/internal/services/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.S().Errorw("failed to encode response", "error", err)
	}
}

// respondError maps service errors to HTTP statuses. Domain rejections
// keep their message so the client can show it; anything unrecognized
// is a persistence fault and stays generic.
func respondError(w http.ResponseWriter, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.S().Errorw("request failed", "error", err)
		message = "something went wrong, please try again"
	}
	respondJSON(w, status, errorResponse{Error: message})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, sessionSvc.ErrSessionNotFound),
		errors.Is(err, membership.ErrSessionNotFound),
		errors.Is(err, invitationSvc.ErrSessionNotFound),
		errors.Is(err, membership.ErrNotMember),
		errors.Is(err, invitationSvc.ErrInvitationNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, membership.ErrSessionFull),
		errors.Is(err, invitationSvc.ErrSessionFull),
		errors.Is(err, membership.ErrAlreadyMember),
		errors.Is(err, invitationSvc.ErrAlreadyMember),
		errors.Is(err, invitationSvc.ErrInvitationResponded):
		return http.StatusConflict, err.Error()

	case errors.Is(err, invitationSvc.ErrInvitationExpired):
		return http.StatusGone, err.Error()

	case errors.Is(err, sessionSvc.ErrNotHost):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, sessionSvc.ErrSessionEnded),
		errors.Is(err, membership.ErrSessionEnded),
		errors.Is(err, invitationSvc.ErrSessionEnded),
		errors.Is(err, sessionSvc.ErrMissingTitle),
		errors.Is(err, sessionSvc.ErrMissingHost),
		errors.Is(err, sessionSvc.ErrMissingSessionID),
		errors.Is(err, sessionSvc.ErrEmptyMessage):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ""
}
