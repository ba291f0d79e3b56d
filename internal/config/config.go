package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultReportingOffset anchors "local day" boundaries for every analytics
// window. The deployment this service was built for reports in IST, so mood
// submitted at 23:30 UTC still lands on the right calendar day for the user.
const DefaultReportingOffset = "+05:30"

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	Port          string
	AllowedOrigin string
	Env           string
	StaticDir     string
	EncryptionKey []byte
	ReportingZone *time.Location
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honoured.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getenv("PORT", "8080"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "*"),
		Env:           getenv("APP_ENV", "development"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	zone, err := ParseZone(getenv("REPORTING_TZ", DefaultReportingOffset))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REPORTING_TZ: %w", err)
	}
	cfg.ReportingZone = zone

	if hexKey := os.Getenv("ENCRYPTION_KEY"); hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil || len(key) != 32 {
			return Config{}, errors.New("ENCRYPTION_KEY must be 64 hex characters (32 bytes)")
		}
		cfg.EncryptionKey = key
	}

	return cfg, nil
}

// Dev reports whether the service runs in development mode, which echoes
// underlying error details in 500 responses.
func (c Config) Dev() bool {
	return c.Env != "production"
}

// ParseZone converts a fixed offset of the form "+05:30" or "-08:00" into a
// time.Location.
func ParseZone(offset string) (*time.Location, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return nil, fmt.Errorf("offset %q must look like +05:30", offset)
	}
	hours, err := strconv.Atoi(offset[1:3])
	if err != nil {
		return nil, fmt.Errorf("offset %q must look like +05:30", offset)
	}
	minutes, err := strconv.Atoi(offset[4:6])
	if err != nil || hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("offset %q must look like +05:30", offset)
	}
	secs := hours*3600 + minutes*60
	if strings.HasPrefix(offset, "-") {
		secs = -secs
	}
	return time.FixedZone("UTC"+offset, secs), nil
}
