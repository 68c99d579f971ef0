package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_NoFileFlag(t *testing.T) {
	withArgs(t)

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://backend:9000",
		"renewal_interval": "5m"
	}`), 0o600))

	withArgs(t, "-c", path)

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "http://backend:9000", c.ServerURL)
	assert.Equal(t, 5*time.Minute, c.RenewalInterval)
	// Fields absent from JSON keep defaults.
	assert.Equal(t, "session.db", c.StatePath)
}
