package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// WebhookTimeout bounds the synchronous store work done before a
	// webhook delivery is acknowledged.
	WebhookTimeout time.Duration

	// ChatContextLimit caps how many products are rendered into the
	// assistant prompt.
	ChatContextLimit int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "shoplight"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "shoplight"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		OpenAIAPIKey:  strings.TrimSpace(getenv("OPENAI_API_KEY", "")),
		OpenAIBaseURL: strings.TrimRight(getenv("OPENAI_BASE_URL", "https://api.openai.com"), "/"),
		OpenAIModel:   getenv("OPENAI_MODEL", "gpt-3.5-turbo"),

		WebhookTimeout:   getenvDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		ChatContextLimit: getenvInt("CHAT_CONTEXT_LIMIT", 15),
	}
}

// StoreConfigured reports whether a durable store is configured at all.
// When false every store operation degrades to a safe no-op.
func (c Config) StoreConfigured() bool {
	dbType := strings.ToLower(strings.TrimSpace(c.DBType))
	return dbType != "" && dbType != "none"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// Module wires configuration loading.
var Module = fx.Module("config",
	fx.Provide(Load),
)
