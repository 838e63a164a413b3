package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.20, cfg.Game.RandomEventProbability)
	assert.Equal(t, 0.20, cfg.Game.CrisisDecisionProbability)
	assert.Equal(t, 3, cfg.Game.MinCompetitors)
	assert.Equal(t, 5, cfg.Game.MaxCompetitors)
	assert.Equal(t, "./data/sim_state.json", cfg.Storage.StatePath)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Server.Port = "9090"
	cfg.Game.MaxCompetitors = 7
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", loaded.Server.Port)
	assert.Equal(t, 7, loaded.Game.MaxCompetitors)
}
