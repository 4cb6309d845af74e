// Package handler holds the gin HTTP handlers for the medical assistant API.
package handler

import (
	"medichat-backend/internal/chat"
	"medichat-backend/internal/middleware"
	"medichat-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	store *storage.Store
	chat  *chat.Service
	log   zerolog.Logger
}

func New(store *storage.Store, chatSvc *chat.Service, log zerolog.Logger) *Handler {
	return &Handler{store: store, chat: chatSvc, log: log}
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"reason for the failure"`
}

type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	UserID  int64  `json:"user_id" example:"1"`
}

// RegisterRoutes attaches every API route to the router. Chat routes carry
// the per-IP rate limit since they fan out to the inference provider.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	api := router.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)
		api.GET("/medical-history", h.GetMedicalHistory)
		api.POST("/medical-history", h.UpdateMedicalHistory)
		api.POST("/chat", middleware.ChatRateLimiter(), h.Chat)
	}
	router.GET("/ws/chat", h.ChatSocket)
}
