package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-s", "http://backend:9000", "-i", "5", "-p", "alt.db")

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, "http://backend:9000", c.ServerURL)
	assert.Equal(t, 5*time.Minute, c.RenewalInterval)
	assert.Equal(t, "alt.db", c.StatePath)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t)

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 14*time.Minute, c.RenewalInterval)
}
