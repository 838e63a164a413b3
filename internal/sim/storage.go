package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/startup-sim/internal/types"
)

// StateStorage handles persistence of the simulation state
type StateStorage struct {
	savePath  string
	stateLock sync.Mutex
}

// NewStateStorage creates a new simulation state storage
func NewStateStorage(savePath string) *StateStorage {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// If we can't create the directory, fall back to the default path
		savePath = "./data/sim_state.json"
	}

	return &StateStorage{
		savePath: savePath,
	}
}

func emptyState() *types.SimState {
	return &types.SimState{
		Companies:   make(map[string]*types.Company),
		Competitors: make(map[string][]*types.Competitor),
		Decisions:   make(map[string][]*types.Decision),
		Records:     make(map[string][]*types.FinancialRecord),
		Events:      make(map[string][]*types.Event),
		Advice:      make(map[string][]*types.AdviceItem),
	}
}

// SaveState saves the simulation state to disk
func (ss *StateStorage) SaveState(state *types.SimState) error {
	ss.stateLock.Lock()
	defer ss.stateLock.Unlock()

	// Create directory if it doesn't exist
	dir := filepath.Dir(ss.savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Marshal state to JSON
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal simulation state: %w", err)
	}

	// Write to file
	if err := os.WriteFile(ss.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write simulation state: %w", err)
	}

	return nil
}

// LoadState loads the simulation state from disk
func (ss *StateStorage) LoadState() (*types.SimState, error) {
	ss.stateLock.Lock()
	defer ss.stateLock.Unlock()

	// Check if file exists
	if _, err := os.Stat(ss.savePath); os.IsNotExist(err) {
		// Return empty state if file doesn't exist
		return emptyState(), nil
	}

	// Read file
	data, err := os.ReadFile(ss.savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation state file: %w", err)
	}

	// Unmarshal JSON
	var state types.SimState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse simulation state: %w", err)
	}

	// Ensure all maps are initialized
	if state.Companies == nil {
		state.Companies = make(map[string]*types.Company)
	}
	if state.Competitors == nil {
		state.Competitors = make(map[string][]*types.Competitor)
	}
	if state.Decisions == nil {
		state.Decisions = make(map[string][]*types.Decision)
	}
	if state.Records == nil {
		state.Records = make(map[string][]*types.FinancialRecord)
	}
	if state.Events == nil {
		state.Events = make(map[string][]*types.Event)
	}
	if state.Advice == nil {
		state.Advice = make(map[string][]*types.AdviceItem)
	}

	return &state, nil
}
