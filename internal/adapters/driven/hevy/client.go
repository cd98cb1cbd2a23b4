// Package hevy provides the tracker adapter for the Hevy API: the
// paginated exercise template catalog plus folder and routine creation.
package hevy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/repsync-cli/internal/core/domain"
	"github.com/custodia-labs/repsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/repsync-cli/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.TemplateCatalog = (*Client)(nil)
	_ driven.TrackerService  = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.hevyapp.com/v1"
	DefaultTimeout = 30 * time.Second

	// pageSize is the catalog page size.
	pageSize = 100

	// proactiveRate throttles requests well under Hevy's documented
	// limits, so long imports never trip the server-side limiter.
	proactiveRate = 5.0
)

// Config holds configuration for the Hevy client.
type Config struct {
	// APIKey is the Hevy API key (required, UUID format).
	APIKey string

	// BaseURL is the API base URL (default: https://api.hevyapp.com/v1).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client talks to the Hevy API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// templatesPage is one page of the exercise template catalog.
type templatesPage struct {
	Page              int                       `json:"page"`
	PageCount         int                       `json:"page_count"`
	ExerciseTemplates []domain.ExerciseTemplate `json:"exercise_templates"`
}

// NewClient creates a new Hevy client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("hevy: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}, nil
}

// FetchAll returns the full exercise template catalog, concatenated across
// pages. Any non-success page response aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context) ([]domain.ExerciseTemplate, error) {
	var templates []domain.ExerciseTemplate

	page := 1
	for {
		path := fmt.Sprintf("/exercise_templates?page=%d&pageSize=%d", page, pageSize)

		var resp templatesPage
		if err := c.get(ctx, path, &resp); err != nil {
			return nil, err
		}
		templates = append(templates, resp.ExerciseTemplates...)

		pageCount := resp.PageCount
		if pageCount < 1 {
			pageCount = 1
		}
		if page >= pageCount {
			break
		}
		page++
	}

	logger.Debug("fetched %d exercise templates in %d pages", len(templates), page)
	return templates, nil
}

// CreateRoutineFolder creates a named routine folder.
func (c *Client) CreateRoutineFolder(ctx context.Context, title string) (*domain.RoutineFolder, error) {
	req := domain.RoutineFolderCreateRequest{
		RoutineFolder: domain.RoutineFolderPayload{Title: title},
	}

	var folder domain.RoutineFolder
	if err := c.post(ctx, "/routine_folders", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// CreateRoutine creates one routine.
func (c *Client) CreateRoutine(ctx context.Context, req *domain.RoutineCreateRequest) error {
	return c.post(ctx, "/routines", req, nil)
}

// Ping validates the API key with a lightweight read.
func (c *Client) Ping(ctx context.Context) error {
	var count struct {
		WorkoutCount int `json:"workout_count"`
	}
	return c.get(ctx, "/workouts/count", &count)
}

// get performs a throttled GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post performs a throttled POST and decodes the response into out when
// out is non-nil.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, data, out)
}

// do performs one API request. Mutating requests carry a client-generated
// idempotency key so an interrupted run can be retried without creating
// duplicates.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.APIError{Service: "hevy", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
