// Package vision implements the vision-model extraction adapter against the
// OpenAI Chat Completions API.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobtrail/internal/config"
	"jobtrail/internal/domain"
	"jobtrail/internal/extract"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client implements port.VisionExtractor using the OpenAI Chat Completions API.
type Client struct {
	apiKey    string
	model     string
	endpoint  string
	maxTokens int
	timeout   time.Duration
	client    *http.Client
}

// NewClient creates a vision extraction client from config.
func NewClient(cfg *config.VisionConfig) *Client {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.VisionConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.VisionConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     model,
		endpoint:  endpoint,
		maxTokens: maxTokens,
		timeout:   timeout,
		client:    &http.Client{Timeout: timeout},
	}
}

// ExtractStructured asks the vision model for a structured job record from
// the screenshot, racing the exchange against the configured timeout.
func (c *Client) ExtractStructured(ctx context.Context, imageRef string) (domain.ExtractedJobData, error) {
	return extract.RaceTimeout(ctx, c.timeout, func(ctx context.Context) (domain.ExtractedJobData, error) {
		return c.call(ctx, imageRef)
	})
}

func (c *Client) call(ctx context.Context, imageRef string) (domain.ExtractedJobData, error) {
	var zero domain.ExtractedJobData

	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": extract.BuildVisionPrompt(),
					},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": imageRef,
						},
					},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return zero, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return zero, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return zero, extract.NewVisionError("api", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, extract.NewVisionError("api", fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return zero, extract.NewVisionError("api",
			fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500)))
	}

	return c.parseResponse(respBody, imageRef)
}

// openAIResponse models the Chat Completions API response.
type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *Client) parseResponse(body []byte, imageRef string) (domain.ExtractedJobData, error) {
	var zero domain.ExtractedJobData

	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return zero, extract.NewVisionError("malformed response", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return zero, extract.NewVisionError("empty response", nil)
	}

	content := resp.Choices[0].Message.Content

	// The model is told to return bare JSON but may wrap it in fences or
	// prose; isolate the outermost object before decoding.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return zero, extract.NewVisionError("no JSON object in response", nil)
	}

	var parsed struct {
		Company string `json:"company"`
		Title   string `json:"title"`
		Status  string `json:"status"`
		Date    string `json:"date"`
		Notes   string `json:"notes"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return zero, extract.NewVisionError("malformed json", fmt.Errorf("%w (raw: %s)", err, truncate(content, 500)))
	}

	date := parsed.Date
	if !domain.ValidISODate(date) {
		date = time.Now().UTC().Format(domain.ISODateFormat)
	}

	return domain.ExtractedJobData{
		Company:        parsed.Company,
		Title:          parsed.Title,
		Status:         domain.NormalizeStatus(parsed.Status),
		Date:           date,
		Notes:          domain.TruncateNotes(parsed.Notes),
		SourceImageURL: imageRef,
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
