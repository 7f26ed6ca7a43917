package routes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenvHelpers(t *testing.T) {
	t.Setenv("ROUTES_TEST_INT", "42")
	t.Setenv("ROUTES_TEST_BAD_INT", "x")
	t.Setenv("ROUTES_TEST_DURATION", "90s")
	t.Setenv("ROUTES_TEST_BAD_DURATION", "-1m")
	t.Setenv("ROUTES_TEST_BOOL", " Yes ")

	assert.Equal(t, 42, getenvInt("ROUTES_TEST_INT", 1))
	assert.Equal(t, 1, getenvInt("ROUTES_TEST_BAD_INT", 1))
	assert.Equal(t, 7, getenvInt("ROUTES_TEST_MISSING", 7))
	assert.Equal(t, 90*time.Second, getenvDuration("ROUTES_TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, getenvDuration("ROUTES_TEST_BAD_DURATION", time.Hour))
	assert.True(t, getenvBool("ROUTES_TEST_BOOL"))
	assert.False(t, getenvBool("ROUTES_TEST_MISSING"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	assert.Nil(t, splitList(""))
}

func TestCorsConfig(t *testing.T) {
	t.Run("no origins allows all without credentials", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg := corsConfig()
		assert.True(t, cfg.AllowAllOrigins)
		assert.False(t, cfg.AllowCredentials)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("explicit origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")
		cfg := corsConfig()
		assert.False(t, cfg.AllowAllOrigins)
		assert.True(t, cfg.AllowCredentials)
		assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.AllowOrigins)
		assert.Contains(t, cfg.AllowHeaders, "Authorization")
		assert.NoError(t, cfg.Validate())
	})
}

func TestNewReportCacheDisabledWithoutAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	assert.Nil(t, newReportCache())
}
