package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	AuthURL         string
	NewsURL         string
	ApplicationsURL string
	AttendanceURL   string
	MembersURL      string
	HTTPTimeout     time.Duration
	StateDir        string

	// Stub server settings.
	StubPort        string
	JWTIssuer       string
	JWTSigningKey   string
	AccessTTL       time.Duration
	RateLimitPerMin int
}

// Load returns application config populated from environment variables with sensible defaults.
// The endpoint defaults point at a locally running stub server.
func Load() App {
	base := getEnv("CLUB_API_BASE", "http://localhost:8085")
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		AuthURL:         getEnv("CLUB_AUTH_URL", base+"/auth"),
		NewsURL:         getEnv("CLUB_NEWS_URL", base+"/news"),
		ApplicationsURL: getEnv("CLUB_APPLICATIONS_URL", base+"/applications"),
		AttendanceURL:   getEnv("CLUB_ATTENDANCE_URL", base+"/attendance"),
		MembersURL:      getEnv("CLUB_MEMBERS_URL", base+"/members"),
		HTTPTimeout:     durationEnv("CLUB_HTTP_TIMEOUT", 15*time.Second),
		StateDir:        getEnv("CLUB_STATE_DIR", defaultStateDir()),
		StubPort:        getEnv("STUB_PORT", "8085"),
		JWTIssuer:       getEnv("JWT_ISSUER", "club-portal"),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		AccessTTL:       durationEnv("ACCESS_TTL", 24*time.Hour),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
	}
}

// defaultStateDir is where the persisted session lives when CLUB_STATE_DIR is unset.
func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".clubportal"
	}
	return filepath.Join(dir, "clubportal")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
