package driven

import "github.com/custodia-labs/repsync-cli/internal/core/domain"

// ConfigStore persists user configuration (API credentials and defaults)
// between runs.
type ConfigStore interface {
	// Load reads the current configuration from storage.
	Load() (*domain.Settings, error)

	// Save writes the configuration to storage.
	Save(settings *domain.Settings) error

	// Path returns the storage location, for display.
	Path() string
}
