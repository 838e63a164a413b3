package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server"`

	// Simulation configuration
	Game GameConfig `json:"game"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`
}

// ServerConfig holds HTTP server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// GameConfig holds simulation tuning values
type GameConfig struct {
	// Probability of a random market event per quarter (0-1)
	RandomEventProbability float64 `json:"random_event_probability"`

	// Probability of an urgent crisis/opportunity decision per quarter (0-1)
	CrisisDecisionProbability float64 `json:"crisis_decision_probability"`

	// Number of competitors generated at company setup
	MinCompetitors int `json:"min_competitors"`
	MaxCompetitors int `json:"max_competitors"`

	// Auto-advance interval in minutes (0 disables the system)
	AutoAdvanceInterval int `json:"auto_advance_interval"`
}

// StorageConfig holds state persistence configuration
type StorageConfig struct {
	// Path of the simulation state snapshot file
	StatePath string `json:"state_path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
		Game: GameConfig{
			RandomEventProbability:    0.20,
			CrisisDecisionProbability: 0.20,
			MinCompetitors:            3,
			MaxCompetitors:            5,
			AutoAdvanceInterval:       0,
		},
		Storage: StorageConfig{
			StatePath: "./data/sim_state.json",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		file, err := os.Create(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(config); err != nil {
			return config, err
		}

		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
