package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "APP_ENV", "LOG_LEVEL", "FRONTEND_URL", "DATABASE_URL", "DB_AUTO_MIGRATE",
		"STATE_SECRET", "STATE_EXPIRY", "SESSION_TTL", "COOKIE_SECURE",
		"SLOT_START_HOUR", "SLOT_END_HOUR", "SLOT_MINUTES",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://medimatch@localhost/medimatch")
	t.Setenv("STATE_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres://medimatch@localhost/medimatch", cfg.DB.URL)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 10*time.Minute, cfg.State.Expiry)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, SlotConfig{StartHour: 9, EndHour: 17, Minutes: 30}, cfg.Slot)
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	content := "DATABASE_URL=postgres://from-file\nSTATE_SECRET=file-secret\nSESSION_TTL=2h\nSLOT_MINUTES=15\n"
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte(content), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://from-file", cfg.DB.URL)
	assert.Equal(t, "file-secret", cfg.State.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 15, cfg.Slot.Minutes)
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_SECRET", "secret")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrDatabaseURLRequired)
}

func TestLoadConfig_RequiresStateSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrStateSecretRequired)
}

func TestLoadConfig_RejectsInvalidSlots(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost")
	t.Setenv("STATE_SECRET", "secret")
	t.Setenv("SLOT_START_HOUR", "18")
	t.Setenv("SLOT_END_HOUR", "9")

	_, err := LoadConfig()
	assert.Error(t, err)
}
