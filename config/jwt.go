package config

import (
	"os"
	"strconv"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// development fallback, never ship without JWT_SECRET set
		secret = "momslove-dev-secret"
	}
	JWTSecret = []byte(secret)

	hours := 24
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	JWTExpiration = time.Duration(hours) * time.Hour
}
