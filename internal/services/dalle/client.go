// Package dalle wraps an OpenAI-compatible image generation API.
package dalle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "dall-e-3"
	defaultSize        = "1024x1024"
	defaultQuality     = "standard"
	defaultHTTPTimeout = 120 * time.Second
)

// Config captures the runtime settings for the image provider.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Size    string
	Quality string
}

// Client generates raster images from textual prompts.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs an image generation client.
func NewClient(cfg Config, opts ...Option) *Client {
	client := &Client{
		cfg: Config{
			APIKey:  strings.TrimSpace(cfg.APIKey),
			BaseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Model:   strings.TrimSpace(cfg.Model),
			Size:    strings.TrimSpace(cfg.Size),
			Quality: strings.TrimSpace(cfg.Quality),
		},
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.cfg.Model == "" {
		client.cfg.Model = defaultModel
	}
	if client.cfg.Size == "" {
		client.cfg.Size = defaultSize
	}
	if client.cfg.Quality == "" {
		client.cfg.Quality = defaultQuality
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

type generationRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type generationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate produces one image for the prompt and returns its bytes, following
// the provider's URL indirection.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("image generate: prompt required")
	}
	if c.cfg.APIKey == "" {
		return nil, errors.New("image generate: api key required")
	}

	payload := generationRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		N:       1,
		Size:    c.cfg.Size,
		Quality: c.cfg.Quality,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("image generate: encode request: %w", err)
	}

	endpoint, err := url.JoinPath(c.cfg.BaseURL, "/images/generations")
	if err != nil {
		return nil, fmt.Errorf("image generate: build url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("image generate: request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generate: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image generate: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("image generate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var generation generationResponse
	if err := json.Unmarshal(body, &generation); err != nil {
		return nil, fmt.Errorf("image generate: decode response: %w", err)
	}
	if generation.Error != nil {
		return nil, fmt.Errorf("image generate: api error: %s", generation.Error.Message)
	}
	if len(generation.Data) == 0 || strings.TrimSpace(generation.Data[0].URL) == "" {
		return nil, errors.New("image generate: response contained no image url")
	}

	return c.download(ctx, generation.Data[0].URL)
}

func (c *Client) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image download: request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download: http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("image download: read body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("image download: empty body")
	}
	return data, nil
}
