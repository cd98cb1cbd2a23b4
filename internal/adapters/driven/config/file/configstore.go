// Package file provides the TOML-backed config store. Configuration
// lives in a TOML file within the repsync config directory.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// configFileName is the settings file within the config directory.
const configFileName = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.repsync/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".repsync")
	}

	// API keys live here, so keep the directory private.
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, configFileName),
	}, nil
}

// Load reads the settings file. A missing file yields zero-value settings
// so first runs work without setup having persisted anything yet.
func (s *ConfigStore) Load() (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.Settings{Extractor: domain.ExtractorAiria}, nil
		}
		return nil, err
	}

	var settings domain.Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if settings.Extractor == "" {
		settings.Extractor = domain.ExtractorAiria
	}
	return &settings, nil
}

// Save persists the settings to disk.
func (s *ConfigStore) Save(settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file location.
func (s *ConfigStore) Path() string {
	return s.filePath
}
