package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Remote  RemoteConfig
	Storage StorageConfig
	Session SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

// RemoteConfig points at the managed content service that owns accounts and
// post documents. The service is authoritative for ids, uniqueness and
// persistence; this app never stores content locally.
type RemoteConfig struct {
	Endpoint   string
	ProjectID  string
	APIKey     string
	Collection string
}

// StorageConfig points at the content service's S3-compatible file bucket
// used for featured images.
type StorageConfig struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	PlaceholderURL string
}

type SessionConfig struct {
	// Backend selects where browser sessions live: "memory" or "redis".
	Backend    string
	JWTSecret  string
	CookieName string
	TTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Remote: RemoteConfig{
			Endpoint:   getEnv("CONTENT_ENDPOINT", "http://localhost:8081/v1"),
			ProjectID:  getEnv("CONTENT_PROJECT_ID", ""),
			APIKey:     getEnv("CONTENT_API_KEY", ""),
			Collection: getEnv("CONTENT_POSTS_COLLECTION", "posts"),
		},
		Storage: StorageConfig{
			Endpoint:       getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:         getEnv("STORAGE_BUCKET", "featured-images"),
			UseSSL:         getEnvAsBool("STORAGE_USE_SSL", false),
			PlaceholderURL: getEnv("STORAGE_PLACEHOLDER_URL", "/static/placeholder.svg"),
		},
		Session: SessionConfig{
			Backend:    getEnv("SESSION_BACKEND", "memory"),
			JWTSecret:  getEnv("SESSION_JWT_SECRET", "dev-only-secret"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "bm_session"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
