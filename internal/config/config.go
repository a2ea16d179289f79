package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	// DSN is the MySQL data source name. Must include parseTime=true.
	DSN string
	// Port the HTTP server listens on.
	Port string
	// GeminiAPIKey, when set, switches listing generation from the built-in
	// stub to the Gemini-backed generator.
	GeminiAPIKey string
	// AIModelName is recorded as last_model_used on generated content and,
	// for the Gemini generator, selects the model to call.
	AIModelName string
	// CORSAllowOrigins is the comma-separated CORS allow-list. Empty allows
	// all origins.
	CORSAllowOrigins []string
}

// Load reads .env (best effort) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: could not load .env file, relying on system environment variables")
	}

	cfg := Config{
		DSN:          os.Getenv("DB_DSN"),
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		AIModelName:  getEnv("AI_MODEL_NAME", ""),
	}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, o)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
