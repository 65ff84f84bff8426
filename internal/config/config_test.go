// Package config_test provides behavior tests for configuration handling.
package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudquota/cfpanel/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.CloudflareAPIBase, cfg.Cloudflare.APIBase)
	assert.True(t, cfg.Audit.Enabled)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := config.Default()
		cfg.Server.Port = port
		assert.Error(t, cfg.Validate(), "port %d", port)
	}
}

func TestValidate_FillsEmptyFields(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = 8080

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, config.CloudflareAPIBase, cfg.Cloudflare.APIBase)
	assert.Equal(t, "20s", cfg.Cloudflare.Timeout)
	assert.Equal(t, "12h", cfg.Session.TTL)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.StructuredFormat)
	assert.NotNil(t, cfg.Logging.ExtraFields)
}

func TestValidate_NormalizesAPIBase(t *testing.T) {
	cfg := config.Default()
	cfg.Cloudflare.APIBase = "http://localhost:9999/client/v4/"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:9999/client/v4", cfg.Cloudflare.APIBase)
}

func TestValidate_NormalizesLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
}

func TestValidate_BadDurationsFallBack(t *testing.T) {
	cfg := config.Default()
	cfg.Cloudflare.Timeout = "soon"
	cfg.Session.TTL = "eventually"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20*time.Second, cfg.CloudflareTimeout())
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL())
}

func TestParsedDurations(t *testing.T) {
	cfg := config.Default()
	cfg.Cloudflare.Timeout = "5s"
	cfg.Session.TTL = "30m"

	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5*time.Second, cfg.CloudflareTimeout())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL())
}

func TestValidate_AuditPathDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Audit.Path = ""

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "cfpanel.db", cfg.Audit.Path)
}
