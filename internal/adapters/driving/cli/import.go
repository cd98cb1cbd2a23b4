package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/components/confirm"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
)

var (
	importExtractor string
	importYes       bool
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a workout document into Hevy",
	Long: `Extracts the workout document, matches its exercises against Hevy's
template catalog, and creates one routine folder plus one routine per
workout day.

A confirmation prompt is shown before anything is created. Use --yes to
skip it (required when stdin is not a terminal).`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importExtractor, "extractor", "", "extraction backend (airia or anthropic)")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(importExtractor)
	if err != nil {
		return err
	}

	var confirmer driven.Confirmer
	if !importYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("stdin is not a terminal; pass --yes to import without confirmation")
		}
		confirmer = confirm.NewPrompt()
	}

	importer, err := newImporter(settings, confirmer, newCommandProgress(cmd))
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	result, err := importer.Import(cmd.Context(), doc)
	if err != nil {
		if result != nil && result.RoutinesCreated > 0 {
			cmd.Printf("Created %d routines before the failure; folder %q may be incomplete.\n",
				result.RoutinesCreated, result.FolderTitle)
		}
		return friendlyError(err)
	}

	cmd.Printf("Imported %q: folder %q with %d routines across %d weeks.\n",
		result.ProgramTitle, result.FolderTitle, result.RoutinesCreated, result.WeekCount)
	return nil
}
