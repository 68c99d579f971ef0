package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"mapmark-server"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseJson_NoFileFlag(t *testing.T) {
	withArgs(t)

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":5000", c.EndpointAddr)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr": ":8088",
		"access_token_validity_duration": "5m",
		"store_backend": "postgres",
		"redis_addr": "localhost:6379"
	}`), 0o600))

	withArgs(t, "-c", path)

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":8088", c.EndpointAddr)
	assert.Equal(t, 5*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, StorePostgres, c.StoreBackend)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	// Fields absent from JSON keep defaults.
	assert.Equal(t, 7*24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, "http://localhost:3000", c.ClientOrigin)
}
