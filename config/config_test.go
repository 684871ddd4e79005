package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "TZ", "DB_PATH", "SEED_DEMO", "API_URL", "HTTP_TIMEOUT", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "farmdash.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "http://farm.local:9000/")
	t.Setenv("HTTP_TIMEOUT", "250ms")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("TZ", "Asia/Bangkok")
	cfg := Load()

	assert.Equal(t, "http://farm.local:9000", cfg.APIURL)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTPTimeout)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "Asia/Bangkok", cfg.Location().String())
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	assert.Equal(t, 10*time.Second, Load().HTTPTimeout)
}
