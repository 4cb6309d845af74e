package handler

import (
	"io"
	"net/http"

	"medichat-backend/internal/chat"
	"medichat-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string            `json:"message" example:"I have a headache"`
	Mode    string            `json:"mode" example:"general"`
	UserID  int64             `json:"user_id" example:"1"`
	History []models.ChatTurn `json:"history"`
}

// Chat godoc
// @Summary      Chat with the assistant
// @Description  Streams the assistant's reply as plain text, chunk by chunk.
// @Description  <br>
// @Description  Response headers: `X-Suggested-Action` (UI hint, possibly empty) and
// @Description  `X-Model` (model id, suffixed ` (Sim)` when the simulation path answered).
// @Description  Provider failures never surface as errors; the response degrades to the
// @Description  simulated stream instead.
// @Tags         Chat
// @Accept       json
// @Produce      plain
// @Param        request body handler.ChatRequest true "chat payload"
// @Success      200 {string} string "streamed reply"
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	res := h.chat.Open(c.Request.Context(), chat.Request{
		Message: req.Message,
		Mode:    req.Mode,
		UserID:  req.UserID,
		History: req.History,
	})

	// Headers must be on the wire before the first chunk.
	c.Header("X-Suggested-Action", res.Action)
	c.Header("X-Model", res.Model)
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)

	// Each chunk is flushed as it arrives; a disconnected client cancels the
	// request context, which tears down the producer.
	c.Stream(func(w io.Writer) bool {
		chunk, ok := <-res.Chunks
		if !ok {
			return false
		}
		_, _ = io.WriteString(w, chunk)
		return true
	})
}
