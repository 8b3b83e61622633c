package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once from the environment at startup.
type Config struct {
	Port       string
	BackendURL string
	RedisAddr  string
	RedisPwd   string
	WebOrigin  string
	SessionTTL time.Duration
	Env        string
}

func loadConfig() Config {
	_ = godotenv.Load()

	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "86400") + "s"); err == nil {
		ttl = d
	}

	return Config{
		Port:       get("PORT", "3001"),
		BackendURL: get("BACKEND_URL", "http://127.0.0.1:8888"),
		RedisAddr:  get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigin:  get("WEB_ORIGIN", "http://localhost:5173"),
		SessionTTL: ttl,
		Env:        get("APP_ENV", "development"),
	}
}

// SecureCookies reports whether session cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return strings.HasPrefix(c.WebOrigin, "https://")
}
