package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dayspring/gather/internal/models"
	sessionSvc "github.com/dayspring/gather/internal/services/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// inboundChat is what a connected client sends to post a message
type inboundChat struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Body     string `json:"body"`
	Type     string `json:"type"`
}

// handleChatSocket upgrades the connection and joins the session's chat
// room. Messages received on the socket go through the same send path
// as the REST endpoint, so capacity of the log and replication behave
// identically.
func (h *Handler) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	if _, err := h.sessions.GetSession(r.Context(), &sessionSvc.GetSessionInput{
		SessionID: sessionID,
	}); err != nil {
		respondError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}

	h.hub.Join(sessionID, conn)
	defer func() {
		h.hub.Leave(sessionID, conn)
		conn.Close()
	}()

	for {
		var in inboundChat
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.S().Debugw("chat socket closed", "session_id", sessionID, "error", err)
			}
			return
		}

		out, err := h.sessions.SendMessage(r.Context(), &sessionSvc.SendMessageInput{
			SessionID: sessionID,
			UserID:    in.UserID,
			UserName:  in.UserName,
			Body:      in.Body,
			Type:      models.MessageType(in.Type),
		})
		if err != nil {
			// Tell only the sender; the room never sees a rejected send
			if writeErr := h.hub.WriteTo(conn, errorResponse{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		h.hub.Broadcast(sessionID, viewMessage(out.Message))
	}
}
