package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"skilltrack"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "skilltrack.json", c.DataFilePath)
	assert.Equal(t, 12*time.Second, c.HTTPTimeout)
	assert.Equal(t, 5, c.HeadlineLimit)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "skilltrack.json", cfg.DataFilePath)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.HeadlineLimit)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	resetArgs(t, "-f", "other.json", "-t", "3", "-n", "7")

	cfg := LoadConfig()

	assert.Equal(t, "other.json", cfg.DataFilePath)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 7, cfg.HeadlineLimit)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("SKILLTRACK_DATA_FILE", "env.json")
	t.Setenv("SKILLTRACK_HTTP_TIMEOUT", "4")
	t.Setenv("SKILLTRACK_HEADLINE_LIMIT", "9")

	cfg := LoadConfig()

	assert.Equal(t, "env.json", cfg.DataFilePath)
	assert.Equal(t, 4*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 9, cfg.HeadlineLimit)
}

func TestParseEnv_IgnoresUnparseableValues(t *testing.T) {
	resetArgs(t)
	t.Setenv("SKILLTRACK_HTTP_TIMEOUT", "soon")
	t.Setenv("SKILLTRACK_HEADLINE_LIMIT", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.HeadlineLimit)
}

func TestFlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-f", "flag.json")
	t.Setenv("SKILLTRACK_DATA_FILE", "env.json")

	cfg := LoadConfig()

	assert.Equal(t, "flag.json", cfg.DataFilePath)
}
