package config

import (
	"os"
	"strings"
)

// Config is everything the server reads from the environment. main calls
// godotenv first so a local .env behaves like the real environment.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
	Env         string
}

func Load() Config {
	return Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseURL: getenv("DATABASE_URL", "postgres://localhost:5432/fantasy_draft?sslmode=disable"),
		JWTSecret:   getenv("JWT_SECRET", "change-me"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),
		Env:         getenv("ENV", "development"),
	}
}

func (c Config) Production() bool { return c.Env == "production" }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
