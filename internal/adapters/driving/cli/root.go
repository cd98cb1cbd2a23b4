// Package cli provides the repsync command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/repsync-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/extraction/airia"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/extraction/anthropic"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/hevy"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/ingest"
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/repsync-cli/internal/core/services"
	"github.com/custodia-labs/repsync-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "repsync",
	Short: "Import workout programs into Hevy",
	Long: `repsync converts workout documents (spreadsheets, PDFs) into Hevy
routines. Documents are read locally, structured by an AI extraction
service, matched against Hevy's exercise template catalog, and created
as one routine folder with one routine per workout day.

Run 'repsync setup' first to configure API credentials.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newConfigStore opens the default configuration store.
func newConfigStore() (driven.ConfigStore, error) {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	return store, nil
}

// loadSettings loads persisted settings and verifies the required keys
// are present for the selected extractor.
func loadSettings(extractorOverride string) (*domain.Settings, error) {
	store, err := newConfigStore()
	if err != nil {
		return nil, err
	}

	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	if extractorOverride != "" {
		kind := domain.ExtractorKind(extractorOverride)
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown extractor %q (expected airia or anthropic)",
				domain.ErrInvalidInput, extractorOverride)
		}
		settings.Extractor = kind
	}

	if !settings.HasRequiredKeys() {
		return nil, fmt.Errorf("%w: run 'repsync setup' to configure API keys", domain.ErrNotConfigured)
	}
	return settings, nil
}

// newExtractor builds the extraction client the settings select.
func newExtractor(settings *domain.Settings) (driven.ExtractionService, error) {
	switch settings.Extractor {
	case domain.ExtractorAnthropic:
		return anthropic.NewClient(anthropic.Config{
			APIKey: settings.AnthropicAPIKey,
		})
	default:
		return airia.NewClient(airia.Config{
			APIKey:     settings.AiriaAPIKey,
			PipelineID: settings.AiriaPipelineID,
		})
	}
}

// newImporter wires the full import pipeline from persisted settings.
// The confirmer may be nil for non-interactive runs.
func newImporter(
	settings *domain.Settings,
	confirmer driven.Confirmer,
	progress driven.ProgressReporter,
) (driving.Importer, error) {
	extractor, err := newExtractor(settings)
	if err != nil {
		return nil, err
	}

	hevyClient, err := hevy.NewClient(hevy.Config{APIKey: settings.HevyAPIKey})
	if err != nil {
		return nil, err
	}

	return services.NewImporter(extractor, hevyClient, hevyClient, confirmer, progress), nil
}

// loadDocument reads a source document, choosing a reader by extension.
func loadDocument(path string) (domain.SourceDocument, error) {
	reader, err := ingest.ReaderFor(path)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}

// friendlyError rewrites well-known sentinel errors for terminal display.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrImportCancelled):
		return errors.New("import cancelled")
	case errors.Is(err, domain.ErrExtractionTimeout):
		return errors.New("extraction timed out; try again or use a smaller document")
	default:
		return err
	}
}
