package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("BACKEND", "remote")
	v.SetDefault("REMOTE_BASE_URL", "http://5.189.180.8:8010")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")
	v.SetDefault("SEED_SAMPLE_ITEMS", true)
	v.SetDefault("SUBMIT_RATE_LIMIT", "30-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("COMPANY_NAME", "Your Company Name")
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendRemote, cfg.Backend)
	assert.Equal(t, "http://5.189.180.8:8010", cfg.RemoteBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
	assert.True(t, cfg.SeedSampleItems)
	assert.Equal(t, "30-M", cfg.SubmitRateLimit)
	assert.True(t, cfg.AllowsAnyOrigin())
	assert.Equal(t, "Your Company Name", cfg.CompanyName)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"BACKEND":              " PGSQL ",
		"PGSQL_URL":            "postgres://localhost/vouchers",
		"HTTP_CLIENT_TIMEOUT":  "5s",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
		"REMOTE_BASE_URL":      "http://api.test/",
	}))

	require.NoError(t, err)
	assert.Equal(t, BackendPgsql, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowsAnyOrigin())
	assert.Equal(t, "http://api.test", cfg.RemoteBaseURL)
}

func TestFromViper_InvalidTimeoutFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"HTTP_CLIENT_TIMEOUT": "soon"}))

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
}

func TestFromViper_BackendErrors(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"BACKEND": "pgsql"}))
	assert.ErrorContains(t, err, "PGSQL_URL is required")

	_, err = fromViper(newTestViper(map[string]any{"BACKEND": "sqlite"}))
	assert.ErrorContains(t, err, "unknown BACKEND")
}
