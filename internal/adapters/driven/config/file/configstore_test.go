package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

func TestConfigStore_LoadMissingFileYieldsDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.ExtractorAiria, settings.Extractor)
	assert.Empty(t, settings.HevyAPIKey)
}

func TestConfigStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	saved := &domain.Settings{
		HevyAPIKey:      "8e2fdd45-3f91-4a2e-9d35-6a9c51e7a042",
		AiriaAPIKey:     "airia-secret-key",
		AiriaPipelineID: "pipe-1",
		Extractor:       domain.ExtractorAnthropic,
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestConfigStore_DefaultsExtractorOnLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte(`hevy_api_key = "abc"`), 0600))

	loaded, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.ExtractorAiria, loaded.Extractor)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(&domain.Settings{HevyAPIKey: "secret"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
