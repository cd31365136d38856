package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

// FixClient reads the latest fix for a device from the telemetry
// service's HTTP read API.
type FixClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFixClient creates a new fix read API client
func NewFixClient(baseURL string, timeout time.Duration) *FixClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &FixClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetLastFix returns the latest fix for a device, or
// models.ErrFixNotFound when the device has never reported.
func (c *FixClient) GetLastFix(ctx context.Context, deviceID string) (*models.LocationFix, error) {
	endpoint := fmt.Sprintf("%s/v1/fixes/%s", c.baseURL, url.PathEscape(deviceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fix request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fix api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrFixNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fix api returned status %d", resp.StatusCode)
	}

	var body struct {
		Success bool               `json:"success"`
		Data    models.LocationFix `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode fix response: %w", err)
	}

	return &body.Data, nil
}
