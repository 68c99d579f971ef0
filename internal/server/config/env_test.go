package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "env-access")
	t.Setenv("REFRESH_TOKEN_SECRET", "env-refresh")
	t.Setenv("CLIENT_ORIGIN", "https://maps.example.com")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "env-access", c.AccessTokenSecret)
	assert.Equal(t, "env-refresh", c.RefreshTokenSecret)
	assert.Equal(t, "https://maps.example.com", c.ClientOrigin)
	// Untouched fields keep their defaults.
	assert.Equal(t, ":5000", c.EndpointAddr)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "accessSecret", c.AccessTokenSecret)
}
