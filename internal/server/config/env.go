package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/avoronovs/partyplan/internal/server/auth"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; real
// environment variables win over .env entries (godotenv never overrides).
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g. ":8080")
//	DATABASE_URL  PostgreSQL DSN
//	JWT_SECRET    token signing secret (required; no default)
//	TOKEN_TTL     token lifetime as "<n>h" or "<n>d"; 24h when unparseable
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		cfg.TokenTTL = auth.ParseTTL(v)
	}
}
