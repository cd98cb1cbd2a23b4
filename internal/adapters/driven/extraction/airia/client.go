// Package airia provides an extraction service adapter using the Airia
// pipeline execution API. Submission is asynchronous: the pipeline returns
// an execution ID which is polled until the job completes or the polling
// ceiling is reached.
package airia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driven/extraction"
	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repsync-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ExtractionService = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://dev.api.airiadev.ai"
	DefaultTimeout = 60 * time.Second

	// DefaultPollInterval is the pause between status polls.
	DefaultPollInterval = 10 * time.Second

	// DefaultMaxPolls caps polling at 30 attempts: a 5 minute ceiling.
	DefaultMaxPolls = 30
)

// Config holds configuration for the Airia extraction client.
type Config struct {
	// APIKey is the Airia API key (required).
	APIKey string

	// PipelineID selects the workout-extraction pipeline (required).
	PipelineID string

	// BaseURL is the API base URL (default: https://dev.api.airiadev.ai).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// PollInterval overrides the pause between polls. Tests shorten it.
	PollInterval time.Duration

	// MaxPolls overrides the polling attempt ceiling.
	MaxPolls int

	// Sleep overrides the backoff/poll sleeper. Tests record delays.
	Sleep extraction.SleepFunc
}

// Client is an extraction service backed by an Airia pipeline.
type Client struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	pipelineID   string
	pollInterval time.Duration
	maxPolls     int
	sleep        extraction.SleepFunc
}

// executionRequest is the pipeline execution submission body.
type executionRequest struct {
	UserInput      string  `json:"userInput"`
	Debug          bool    `json:"debug"`
	UserID         *string `json:"userId"`
	ConversationID *string `json:"conversationId"`
}

// executionResponse is the submission response; the API has returned the
// identifier under both names.
type executionResponse struct {
	ExecutionID string `json:"executionId"`
	ID          string `json:"id"`
}

// pollResponse is the execution status response. Status and result have
// appeared under several field names across API revisions; all are read.
type pollResponse struct {
	Status          string `json:"status"`
	State           string `json:"state"`
	ExecutionStatus string `json:"executionStatus"`

	Result  json.RawMessage `json:"result"`
	Output  json.RawMessage `json:"output"`
	Outputs json.RawMessage `json:"outputs"`
	Data    json.RawMessage `json:"data"`

	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
	Message      string `json:"message"`
}

// NewClient creates a new Airia extraction client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("airia: API key is required")
	}
	if cfg.PipelineID == "" {
		return nil, fmt.Errorf("airia: pipeline ID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxPolls == 0 {
		cfg.MaxPolls = DefaultMaxPolls
	}
	if cfg.Sleep == nil {
		cfg.Sleep = extraction.Sleep
	}

	return &Client{
		client:       &http.Client{Timeout: cfg.Timeout},
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		pipelineID:   cfg.PipelineID,
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		sleep:        cfg.Sleep,
	}, nil
}

// Name identifies the extraction backend.
func (c *Client) Name() string { return "airia" }

// Extract submits the document to the pipeline and polls for the result.
// Submission is retried with backoff on transient failures; the polling
// loop is not.
func (c *Client) Extract(ctx context.Context, doc domain.SourceDocument) (*domain.WorkoutProgram, error) {
	prompt, err := extraction.BuildPrompt(doc)
	if err != nil {
		return nil, err
	}

	executionID, err := extraction.RetrySubmission(ctx, c.sleep, func() (string, error) {
		return c.submit(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("airia execution %s submitted, polling every %s", executionID, c.pollInterval)
	return c.pollForCompletion(ctx, executionID)
}

// submit creates a pipeline execution and returns its identifier.
func (c *Client) submit(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(executionRequest{UserInput: prompt})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v2/PipelineExecution/%s", c.baseURL, c.pipelineID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.APIError{Service: "airia", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var execution executionResponse
	if err := json.Unmarshal(respBody, &execution); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	id := execution.ExecutionID
	if id == "" {
		id = execution.ID
	}
	if id == "" {
		return "", fmt.Errorf("airia: response missing execution ID")
	}
	return id, nil
}

// pollForCompletion polls the execution status until it resolves or the
// attempt ceiling is reached. Unknown statuses are treated as
// still-running and count against the same ceiling.
func (c *Client) pollForCompletion(ctx context.Context, executionID string) (*domain.WorkoutProgram, error) {
	for attempt := 1; attempt <= c.maxPolls; attempt++ {
		poll, err := c.pollOnce(ctx, executionID)
		if err != nil {
			return nil, err
		}

		token := firstNonEmpty(poll.Status, poll.State, poll.ExecutionStatus)
		status := domain.ParseJobStatus(token)

		switch status {
		case domain.JobStatusCompleted:
			return parseResult(poll)
		case domain.JobStatusFailed:
			msg := firstNonEmpty(poll.Error, poll.ErrorMessage, poll.Message)
			if msg == "" {
				msg = "unknown error"
			}
			return nil, &domain.PipelineError{Message: msg}
		default:
			logger.Debug("airia execution %s %s (%d/%d)", executionID, status, attempt, c.maxPolls)
		}

		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}

	return nil, domain.ErrExtractionTimeout
}

// pollOnce fetches the execution status.
func (c *Client) pollOnce(ctx context.Context, executionID string) (*pollResponse, error) {
	url := fmt.Sprintf("%s/PipelineExecution/%s", c.baseURL, executionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll execution: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.APIError{Service: "airia", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var poll pollResponse
	if err := json.Unmarshal(body, &poll); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &poll, nil
}

// parseResult extracts the program from whichever result field the API
// populated. The payload is either an embedded object or a JSON string.
func parseResult(poll *pollResponse) (*domain.WorkoutProgram, error) {
	raw := firstNonNull(poll.Result, poll.Output, poll.Outputs, poll.Data)
	if raw == nil {
		return nil, fmt.Errorf("%w: empty result", domain.ErrParseFailure)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return extraction.ParseProgram(asString)
	}
	return extraction.ParseProgram(string(raw))
}

// Ping validates credentials by fetching the pipeline's configuration.
// A 404 still proves the key was accepted.
func (c *Client) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/PipelinesConfig/%s", c.baseURL, c.pipelineID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("airia: failed to create ping request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("airia: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return &domain.APIError{Service: "airia", StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNull(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		if len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return nil
}
