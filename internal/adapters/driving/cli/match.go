package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/tui/components/input"
)

var matchLimit int

var matchCmd = &cobra.Command{
	Use:   "match [exercise name]",
	Short: "Match an exercise name against Hevy's template catalog",
	Long: `Resolves a free-text exercise name against Hevy's exercise template
catalog and prints the best candidates with their confidence scores.
Useful for checking how a name in a document will be matched.

When no name is given on an interactive terminal, an input prompt opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 5, "maximum number of candidates")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings("")
	if err != nil {
		return err
	}

	importer, err := newImporter(settings, nil, nil)
	if err != nil {
		return err
	}

	name, err := matchQuery(cmd, args)
	if err != nil {
		return err
	}

	matches, err := importer.MatchExercise(cmd.Context(), name, matchLimit)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		cmd.Println("No matching templates found.")
		return nil
	}

	cmd.Println("Candidates:")
	for i := range matches {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, matches[i].Template.Title, matches[i].Confidence)
		cmd.Printf("      ID: %s\n", matches[i].TemplateID)
	}
	return nil
}

func matchQuery(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("an exercise name is required")
	}

	name, err := input.NewPrompt().Ask(cmd.Context(), "Exercise")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("an exercise name is required")
	}
	return name, nil
}
