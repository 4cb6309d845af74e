package handler

import (
	"net/http"

	"medichat-backend/internal/chat"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SocketFrame is one server-to-client websocket message. A reply is a
// "meta" frame, then "chunk" frames, then a "done" frame.
type SocketFrame struct {
	Type            string `json:"type"`
	Model           string `json:"model,omitempty"`
	SuggestedAction string `json:"suggested_action,omitempty"`
	Content         string `json:"content,omitempty"`
}

// ChatSocket godoc
// @Summary      Chat over a websocket
// @Description  Websocket transport for the chat orchestrator.
// @Description  <br>
// @Description  **Note: not a standard HTTP API.** Connect with `ws://` or `wss://`.
// @Description  The client sends one JSON chat request per message (same shape as
// @Description  POST /api/chat) and receives a meta frame, streamed chunk frames and a
// @Description  done frame per reply.
// @Tags         WebSocket
// @Success      101 {string} string "Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "upgrade failed"
// @Router       /ws/chat [get]
func (h *Handler) ChatSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to upgrade to websocket")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	h.log.Info().Str("session_id", sessionID).Msg("chat socket opened")
	defer h.log.Info().Str("session_id", sessionID).Msg("chat socket closed")

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		res := h.chat.Open(c.Request.Context(), chat.Request{
			Message: req.Message,
			Mode:    req.Mode,
			UserID:  req.UserID,
			History: req.History,
		})

		if err := conn.WriteJSON(SocketFrame{Type: "meta", Model: res.Model, SuggestedAction: res.Action}); err != nil {
			return
		}
		for chunk := range res.Chunks {
			if err := conn.WriteJSON(SocketFrame{Type: "chunk", Content: chunk}); err != nil {
				return
			}
		}
		if err := conn.WriteJSON(SocketFrame{Type: "done"}); err != nil {
			return
		}
	}
}
