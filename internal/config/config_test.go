package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LASTMINUTE_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_TTL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "lastminute.db", cfg.DatabaseURL)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "08:00", cfg.DigestTime)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadParsesHours(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL_HOURS", "12")
	t.Setenv("PURGE_INTERVAL_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.PurgeInterval)
}
