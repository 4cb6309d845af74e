package main

import (
	"os"

	"medichat-backend/internal/chat"
	"medichat-backend/internal/config"
	"medichat-backend/internal/handler"
	"medichat-backend/internal/llm"
	"medichat-backend/internal/storage"

	_ "medichat-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Medichat Backend API
// @version      1.0
// @description  Medical assistant backend: accounts, per-user medical profiles and streamed LLM chat with a simulation fallback.
// @BasePath     /
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer store.Close()

	// The provider stays nil without a credential; every chat request then
	// takes the simulation path and never reaches the network.
	var provider llm.Provider
	if cfg.GithubToken != "" {
		provider = llm.NewClient(cfg.GithubToken, cfg.LLMBaseURL)
	} else {
		logger.Warn().Msg("GITHUB_TOKEN not set, chat runs in simulation mode")
	}
	chatSvc := chat.NewService(provider, store, cfg.ChatModel, logger)

	h := handler.New(store, chatSvc, logger)

	router := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	// The browser client reads both chat headers.
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, "X-Suggested-Action", "X-Model")
	router.Use(cors.New(corsCfg))

	handler.RegisterRoutes(router, h)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info().Str("port", cfg.Port).Str("model", cfg.ChatModel).Msg("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
