package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianroos/advent-of-code-2022/config"
	"github.com/adrianroos/advent-of-code-2022/explore"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, 30, cfg.Horizon)
	assert.Equal(t, 4, cfg.HeadStart)
	assert.Len(t, cfg.ExploreOptions(), 2)
}

func TestParse_YAMLOverridesDefaults(t *testing.T) {
	data := []byte(`
start: BB
horizon: 24
dedup: first-seen
log:
  level: debug
`)
	cfg, err := config.Parse(data, ".yml")
	require.NoError(t, err)
	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, 24, cfg.Horizon)
	assert.Equal(t, 4, cfg.HeadStart, "unset fields keep defaults")
	assert.Equal(t, "first-seen", cfg.Dedup)
	assert.Equal(t, "fifo", cfg.Frontier)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestParse_JSONDetectedFromContent(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"horizon": 26, "head_start": 0, "frontier": "lifo"}`), "")
	require.NoError(t, err)
	assert.Equal(t, 26, cfg.Horizon)
	assert.Equal(t, 0, cfg.HeadStart)
	assert.Equal(t, "lifo", cfg.Frontier)
}

func TestParse_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"negative horizon": "horizon: -1",
		"negative head":    "head_start: -2",
		"empty start":      `start: ""`,
		"dedup":            "dedup: newest",
		"frontier":         "frontier: random",
		"log level":        "log: {level: loud}",
		"log format":       "log: {format: xml}",
	} {
		_, err := config.Parse([]byte(data), ".yaml")
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("horizon: [1"), ".yaml")
	require.Error(t, err)
	_, err = config.Parse([]byte(`{"horizon":`), ".json")
	require.Error(t, err)
}

func TestParse_InvalidEnumsWrapOptionViolation(t *testing.T) {
	_, err := config.Parse([]byte("dedup: newest"), ".yaml")
	require.ErrorIs(t, err, explore.ErrOptionViolation)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("horizon: 10\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Horizon)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
