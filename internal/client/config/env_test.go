package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	clearPolicyEnv(t)
	t.Setenv("POLICY_MEDIA_BACKEND", "s3")
	t.Setenv("POLICY_S3_BUCKET", "profiles")
	t.Setenv("POLICY_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("POLICY_REQUEST_TIMEOUT", "1500ms")
	t.Setenv("POLICY_LOG_BACKEND", "  zap  ")
	t.Setenv("POLICY_NO_COLOR", "true")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, nil))

	assert.Equal(t, "s3", cfg.MediaBackend)
	assert.Equal(t, "profiles", cfg.S3Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3BaseEndpoint)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.True(t, cfg.NoColor)
}

func TestParseEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"POLICY_REQUEST_TIMEOUT": "soon",
		"POLICY_MESSAGE_TTL":     "5",
		"POLICY_NO_COLOR":        "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearPolicyEnv(t)
			t.Setenv(key, value)

			err := parseEnv(defaults(), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseEnv_BareNoColor(t *testing.T) {
	clearPolicyEnv(t)
	t.Setenv("NO_COLOR", "1")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, nil))
	assert.True(t, cfg.NoColor)
}
