package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/startup-sim/internal/types"
)

func TestStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	storage := NewStateStorage(path)

	state := emptyState()
	state.Companies["c1"] = &types.Company{
		ID:   "c1",
		Name: "Acme",
		Type: types.BusinessTech,
		Cash: 50000,
	}
	state.Events["c1"] = []*types.Event{
		{ID: "e1", CompanyID: "c1", Title: "Revenue Surge"},
	}

	require.NoError(t, storage.SaveState(state))

	loaded, err := storage.LoadState()
	require.NoError(t, err)
	require.Contains(t, loaded.Companies, "c1")
	assert.Equal(t, "Acme", loaded.Companies["c1"].Name)
	assert.Equal(t, 50000.0, loaded.Companies["c1"].Cash)
	require.Len(t, loaded.Events["c1"], 1)
	assert.Equal(t, "Revenue Surge", loaded.Events["c1"][0].Title)
}

func TestLoadStateMissingFile(t *testing.T) {
	storage := NewStateStorage(filepath.Join(t.TempDir(), "missing.json"))

	state, err := storage.LoadState()
	require.NoError(t, err)
	assert.NotNil(t, state.Companies)
	assert.NotNil(t, state.Competitors)
	assert.NotNil(t, state.Decisions)
	assert.NotNil(t, state.Records)
	assert.NotNil(t, state.Events)
	assert.NotNil(t, state.Advice)
	assert.Empty(t, state.Companies)
}
