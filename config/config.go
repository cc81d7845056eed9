package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-provided settings. Secrets stay empty when
// unset; callers decide whether an empty value is fatal.
type Config struct {
	Port             string
	DatabaseURL      string
	CronSecret       string
	PushoverAPIToken string
	PushoverUserKey  string
	Timezone         string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CronSecret:       getEnv("CRON_SECRET", ""),
		PushoverAPIToken: getEnv("PUSHOVER_API_TOKEN", ""),
		PushoverUserKey:  getEnv("PUSHOVER_USER_KEY", ""),
		Timezone:         getEnv("TIMEZONE", "Europe/Paris"),
	}
}

// Location resolves the canonical timezone used for calendar-day math.
// Every "today" and reminder-window computation goes through this so the
// day boundary is the same everywhere.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[Config] Invalid TIMEZONE %q, falling back to UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// HasPushoverCredentials reports whether outbound notifications can be sent.
func (c *Config) HasPushoverCredentials() bool {
	return c.PushoverAPIToken != "" && c.PushoverUserKey != ""
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
