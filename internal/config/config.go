package config

import (
	"log"
	"os"
	"strconv"

	"terra-assistant-be/internal/constant"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Ai    AIConfig
	Log   LogConfig
	Admin AdminConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "ollama"
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string // e.g. "gpt-3.5-turbo", "llama3"
	Temperature       float64
	OpenAIBaseURL     string
	OpenAIAPIKey      string
	OpenAIEmbedModel  string
	OllamaBaseURL     string
	OllamaEmbedModel  string
	SystemPrompt      string
	RetrievalTopK     int
	HistoryWindow     int
}

type LogConfig struct {
	Sink    string // "csv", "nats" or "none"
	CSVPath string
}

type AdminConfig struct {
	ExportToken string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-3.5-turbo"),
			Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.0),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIEmbedModel:  getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			SystemPrompt:      getEnv("ASSISTANT_SYSTEM_PROMPT", constant.DefaultSystemPrompt),
			RetrievalTopK:     getEnvAsInt("RETRIEVAL_TOP_K", 2),
			HistoryWindow:     getEnvAsInt("HISTORY_WINDOW", 10),
		},
		Log: LogConfig{
			Sink:    getEnv("CHATLOG_SINK", "csv"),
			CSVPath: getEnv("CHATLOG_CSV_PATH", "data/user_logs.csv"),
		},
		Admin: AdminConfig{
			ExportToken: getEnv("ADMIN_EXPORT_TOKEN", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
