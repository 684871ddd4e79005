package config

import (
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // TZ must resolve on hosts without a zoneinfo db

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	SeedDemo    bool
	APIURL      string
	HTTPTimeout time.Duration
	LogLevel    string
	LogFile     string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	timeout, err := time.ParseDuration(get("HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		log.Printf("[cfg] bad HTTP_TIMEOUT, using 10s")
		timeout = 10 * time.Second
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "UTC"),
		DBPath:      get("DB_PATH", "farmdash.db"),
		SeedDemo:    get("SEED_DEMO", "false") == "true",
		APIURL:      strings.TrimRight(get("API_URL", "http://localhost:8080"), "/"),
		HTTPTimeout: timeout,
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFile:     get("LOG_FILE", ""),
	}
	return cfg
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[cfg] unknown TZ %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}
