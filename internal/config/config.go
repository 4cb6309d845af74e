package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultDBPath    = "./medichat.db"
	defaultBaseURL   = "https://models.inference.ai.azure.com"
	defaultChatModel = "Meta-Llama-3.1-8B-Instruct"
)

type Config struct {
	Port        string
	DBPath      string
	GithubToken string // provider credential; empty means simulation-only
	LLMBaseURL  string
	ChatModel   string
}

// Load reads .env if present, then the environment, applying defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", defaultPort),
		DBPath:      getenv("DB_PATH", defaultDBPath),
		GithubToken: os.Getenv("GITHUB_TOKEN"),
		LLMBaseURL:  getenv("LLM_BASE_URL", defaultBaseURL),
		ChatModel:   getenv("CHAT_MODEL", defaultChatModel),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
