package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.EndpointAddr)
	assert.Equal(t, "http://localhost:3000", c.ClientOrigin)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, StoreMemory, c.StoreBackend)
	assert.Equal(t, UploadLocal, c.UploadBackend)
	assert.Equal(t, "uploads", c.UploadDir)
	assert.NotEqual(t, c.AccessTokenSecret, c.RefreshTokenSecret,
		"the two token classes must be signed with distinct secrets")
}
