package domain

import "regexp"

// ExtractorKind selects which extraction backend performs document
// understanding.
type ExtractorKind string

// Available extraction backends.
const (
	// ExtractorAiria uses the asynchronous Airia pipeline API.
	ExtractorAiria ExtractorKind = "airia"

	// ExtractorAnthropic uses the synchronous Anthropic messages API.
	ExtractorAnthropic ExtractorKind = "anthropic"
)

// IsValid returns true if the extractor kind is recognised.
func (k ExtractorKind) IsValid() bool {
	switch k {
	case ExtractorAiria, ExtractorAnthropic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ExtractorKind) String() string {
	return string(k)
}

// Settings is the persisted user configuration.
type Settings struct {
	// HevyAPIKey authenticates against the tracker API. Hevy issues
	// UUID-format keys.
	HevyAPIKey string `toml:"hevy_api_key"`

	// AiriaAPIKey authenticates against the Airia pipeline API.
	AiriaAPIKey string `toml:"airia_api_key"`

	// AiriaPipelineID selects the workout-extraction pipeline.
	AiriaPipelineID string `toml:"airia_pipeline_id"`

	// AnthropicAPIKey authenticates against the Anthropic API. Optional;
	// only needed when Extractor is "anthropic".
	AnthropicAPIKey string `toml:"anthropic_api_key"`

	// Extractor is the default extraction backend.
	Extractor ExtractorKind `toml:"extractor"`
}

// HasRequiredKeys reports whether the configured extractor and the tracker
// are both usable.
func (s *Settings) HasRequiredKeys() bool {
	if s.HevyAPIKey == "" {
		return false
	}
	switch s.Extractor {
	case ExtractorAnthropic:
		return s.AnthropicAPIKey != ""
	default:
		return s.AiriaAPIKey != "" && s.AiriaPipelineID != ""
	}
}

// hevyKeyPattern matches the UUID format Hevy issues API keys in.
var hevyKeyPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateHevyAPIKey checks that a tracker API key is a well-formed UUID.
func ValidateHevyAPIKey(key string) bool {
	return hevyKeyPattern.MatchString(key)
}

// ValidateAiriaAPIKey applies a basic shape check to an Airia API key.
func ValidateAiriaAPIKey(key string) bool {
	return len(key) > 10
}
