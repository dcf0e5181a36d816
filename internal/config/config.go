package config

import (
	"os"
	"time"
)

type Config struct {
	Addr       string
	RedisAddr  string
	JWTSecret  string
	SessionTTL time.Duration
}

func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// session state expires with the browsing session; keys are refreshed
	// on every write
	ttl := 30 * time.Minute
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		}
	}

	return Config{
		Addr:       addr,
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: ttl,
	}
}
