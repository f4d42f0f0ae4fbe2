// Package sarviews implements a client for the SARVIEWS event catalog API.
package sarviews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Client handles communication with the SARVIEWS event API
type Client struct {
	baseURL    string
	httpClient *http.Client
	dlClient   *http.Client
	logger     *slog.Logger
}

// NewClient creates a new SARVIEWS API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		// Product archives run to hundreds of MB; an overall deadline
		// would abort them mid-transfer. Downloads rely on context
		// cancellation instead.
		dlClient: &http.Client{Transport: transport},
		logger:   slog.Default(),
	}
}

// WithLogger sets a custom logger for the client
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// GetEvent fetches the catalog record for a single SARVIEWS event.
// An unknown event ID yields an event with zero products, not an error.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	base.Path = path.Join(base.Path, "events", id)
	eventURL := base.String()

	c.logger.DebugContext(ctx, "querying SARVIEWS event",
		slog.String("url", eventURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, eventURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "sarprep/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "SARVIEWS API request failed",
			slog.String("error", err.Error()),
			slog.String("url", eventURL),
		)
		return nil, fmt.Errorf("SARVIEWS API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.ErrorContext(ctx, "SARVIEWS API returned non-200 status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response_body", string(body)),
		)
		return nil, fmt.Errorf("SARVIEWS API returned status %d: %s", resp.StatusCode, string(body))
	}

	var event Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode SARVIEWS response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode SARVIEWS response: %w", err)
	}

	c.logger.DebugContext(ctx, "SARVIEWS event fetched",
		slog.String("event_id", id),
		slog.Int("product_count", len(event.Products)),
	)

	return &event, nil
}

// Download fetches a product's file into destDir, named by the URL basename.
// destDir must already exist; the caller owns the directory.
func (c *Client) Download(ctx context.Context, product Product, destDir string) (string, error) {
	productURL := product.Files.ProductURL

	parsed, err := url.Parse(productURL)
	if err != nil {
		return "", fmt.Errorf("invalid product URL %q: %w", productURL, err)
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("product URL %q has no file name", productURL)
	}
	dest := filepath.Join(destDir, name)

	c.logger.InfoContext(ctx, "downloading product",
		slog.String("url", productURL),
		slog.String("dest", dest),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.dlClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("product download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("product download returned status %d for %s", resp.StatusCode, productURL)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dest, err)
	}

	return dest, nil
}
