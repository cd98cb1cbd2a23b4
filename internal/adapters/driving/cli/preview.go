package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

var (
	previewExtractor string
	previewJSON      bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview what an import would create",
	Long: `Extracts the workout document and matches its exercises against
Hevy's template catalog, then prints a summary of the routines an
import would create. Nothing is created in Hevy.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewExtractor, "extractor", "", "extraction backend (airia or anthropic)")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "output the preview as JSON")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(previewExtractor)
	if err != nil {
		return err
	}

	importer, err := newImporter(settings, nil, newCommandProgress(cmd))
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	preview, err := importer.Preview(cmd.Context(), doc)
	if err != nil {
		return friendlyError(err)
	}

	if previewJSON {
		return outputPreviewJSON(cmd, preview)
	}
	return outputPreviewTable(cmd, preview)
}

func outputPreviewJSON(cmd *cobra.Command, preview *domain.ImportPreview) error {
	data, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preview: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPreviewTable(cmd *cobra.Command, preview *domain.ImportPreview) error {
	s := styles.DefaultStyles()

	cmd.Println(s.Title.Render(preview.ProgramTitle))
	cmd.Printf("%d weeks, %d workouts, %d exercises\n",
		preview.WeekCount, preview.WorkoutCount, preview.ExerciseCount)
	if preview.WasSampled {
		cmd.Println(s.Warning.Render("Large sheet detected: rows were sampled before extraction."))
	}
	cmd.Println()

	if len(preview.Matches) > 0 {
		cmd.Println("Exercise matches:")
		for i := range preview.Matches {
			row := &preview.Matches[i]
			confidence := fmt.Sprintf("%.2f", row.Confidence)
			switch {
			case row.LowConfidence:
				confidence = s.Warning.Render(confidence + " (low)")
			case row.Confidence >= 0.9:
				confidence = s.Success.Render(confidence)
			}
			cmd.Printf("  %s -> %s  %s\n", row.Name, row.TemplateTitle, confidence)
		}
		cmd.Println()
	}

	if len(preview.Unmatched) > 0 {
		cmd.Println(s.Error.Render("Unmatched exercises (import would fail):"))
		for _, name := range preview.Unmatched {
			cmd.Printf("  %s\n", name)
		}
		cmd.Println()
		return nil
	}

	cmd.Printf("Import would create 1 folder and %d routines.\n", preview.WorkoutCount)
	return nil
}
