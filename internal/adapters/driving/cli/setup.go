package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/extraction/airia"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/extraction/anthropic"
	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/hevy"
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure API credentials",
	Long: `Run an interactive wizard to configure the Hevy API key and the
extraction backend credentials. Each key is validated against the live
service before it is saved.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}

	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("repsync Setup")
	cmd.Println("=============")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Step 1: Hevy
	cmd.Println("Step 1: Hevy")
	cmd.Println("------------")
	if err := configureHevy(cmd, reader, settings); err != nil {
		return err
	}
	cmd.Println()

	// Step 2: Extraction backend
	cmd.Println("Step 2: Extraction Backend")
	cmd.Println("--------------------------")
	if err := configureExtractor(cmd, reader, settings); err != nil {
		return err
	}
	cmd.Println()

	if err := store.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Println("Setup Complete!")
	cmd.Printf("Settings saved to %s\n", store.Path())
	return nil
}

func configureHevy(cmd *cobra.Command, reader *bufio.Reader, settings *domain.Settings) error {
	if settings.HevyAPIKey != "" {
		cmd.Printf("Current API key: %s\n", maskAPIKey(settings.HevyAPIKey))
		cmd.Print("Enter new API key (blank to keep): ")
	} else {
		cmd.Print("Enter Hevy API key: ")
	}

	key := readPassword()
	cmd.Println()
	if key == "" {
		if settings.HevyAPIKey == "" {
			return errors.New("a Hevy API key is required")
		}
		key = settings.HevyAPIKey
	}

	if !domain.ValidateHevyAPIKey(key) {
		return errors.New("invalid Hevy API key: expected UUID format (find yours at hevy.com/settings?developer)")
	}

	client, err := hevy.NewClient(hevy.Config{APIKey: key})
	if err != nil {
		return err
	}

	cmd.Print("Validating Hevy credentials... ")
	if err := client.Ping(cmd.Context()); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("hevy credential validation failed: %w", err)
	}
	cmd.Println("OK")

	settings.HevyAPIKey = key
	return nil
}

func configureExtractor(cmd *cobra.Command, reader *bufio.Reader, settings *domain.Settings) error {
	kinds := []domain.ExtractorKind{domain.ExtractorAiria, domain.ExtractorAnthropic}

	cmd.Println("Select extraction backend:")
	for i, kind := range kinds {
		cmd.Printf("  %d. %s\n", i+1, kind)
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(kinds), 1)
	settings.Extractor = kinds[idx-1]

	switch settings.Extractor {
	case domain.ExtractorAnthropic:
		return configureAnthropic(cmd, settings)
	default:
		return configureAiria(cmd, reader, settings)
	}
}

func configureAiria(cmd *cobra.Command, reader *bufio.Reader, settings *domain.Settings) error {
	if settings.AiriaAPIKey != "" {
		cmd.Printf("Current API key: %s\n", maskAPIKey(settings.AiriaAPIKey))
		cmd.Print("Enter new API key (blank to keep): ")
	} else {
		cmd.Print("Enter Airia API key: ")
	}
	key := readPassword()
	cmd.Println()
	if key == "" {
		key = settings.AiriaAPIKey
	}
	if !domain.ValidateAiriaAPIKey(key) {
		return errors.New("invalid Airia API key")
	}

	if settings.AiriaPipelineID != "" {
		cmd.Printf("Enter pipeline ID [%s]: ", settings.AiriaPipelineID)
	} else {
		cmd.Print("Enter pipeline ID: ")
	}
	pipelineID := readLine(reader)
	if pipelineID == "" {
		pipelineID = settings.AiriaPipelineID
	}
	if pipelineID == "" {
		return errors.New("an Airia pipeline ID is required")
	}

	client, err := airia.NewClient(airia.Config{APIKey: key, PipelineID: pipelineID})
	if err != nil {
		return err
	}

	cmd.Print("Validating Airia credentials... ")
	if err := client.Ping(cmd.Context()); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("airia credential validation failed: %w", err)
	}
	cmd.Println("OK")

	settings.AiriaAPIKey = key
	settings.AiriaPipelineID = pipelineID
	return nil
}

func configureAnthropic(cmd *cobra.Command, settings *domain.Settings) error {
	if settings.AnthropicAPIKey != "" {
		cmd.Printf("Current API key: %s\n", maskAPIKey(settings.AnthropicAPIKey))
		cmd.Print("Enter new API key (blank to keep): ")
	} else {
		cmd.Print("Enter Anthropic API key: ")
	}
	key := readPassword()
	cmd.Println()
	if key == "" {
		if settings.AnthropicAPIKey == "" {
			return errors.New("an Anthropic API key is required for this backend")
		}
		key = settings.AnthropicAPIKey
	}

	client, err := anthropic.NewClient(anthropic.Config{APIKey: key})
	if err != nil {
		return err
	}

	cmd.Print("Validating Anthropic credentials... ")
	if err := client.Ping(cmd.Context()); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("anthropic credential validation failed: %w", err)
	}
	cmd.Println("OK")

	settings.AnthropicAPIKey = key
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
