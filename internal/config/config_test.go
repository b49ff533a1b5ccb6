package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_PATH", "SESSION_TTL", "FOCUS_DELAY", "LOG_LEVEL"} {
		unsetenv(t, k)
		unsetenv(t, Prefix+"_"+k)
	}

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Addr())
	assert.Equal(t, "portfolio.db", s.DatabasePath)
	assert.Equal(t, 30*time.Minute, s.SessionTTL)
	assert.Equal(t, 500*time.Millisecond, s.FocusDelay)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoad_PlainAndPrefixedKeys(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PORTFOLIO_SESSION_TTL", "5m")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, 5*time.Minute, s.SessionTTL)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("PORTFOLIO_FOCUS_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}
