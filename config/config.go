package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the irgen.json configuration file
type Config struct {
	Name      string    `json:"name"`
	Package   string    `json:"package"`
	Languages []string  `json:"languages"`
	Output    string    `json:"output"`
	Dev       DevConfig `json:"dev"`
}

// DevConfig contains development watch configuration
type DevConfig struct {
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

// Load loads the irgen.json configuration from the current directory or
// a parent directory. The second return value is the project root, the
// directory holding the file.
func Load() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadFromDir(dir)
}

// LoadFromPath loads the irgen.json configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if len(config.Languages) == 0 {
		config.Languages = []string{"cpp"}
	}
	if config.Output == "" {
		config.Output = "./gen"
	}
	if len(config.Dev.Watch) == 0 {
		config.Dev.Watch = []string{"*.go", "**/*.go", "irgen.json"}
	}
	if len(config.Dev.Exclude) == 0 {
		config.Dev.Exclude = []string{"*_test.go", "gen/", ".git/"}
	}

	return &config, nil
}

// loadFromDir searches for irgen.json in the given directory and its parents
func loadFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "irgen.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no irgen.json found in %s or any parent directory", startDir)
}
