// internal/infrastructure/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-web/internal/config"
)

// APIError is returned for any non-2xx response from the commerce API.
// The stores deliberately do not distinguish network failures from
// application-level rejections; both surface as a failed operation.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("commerce API returned status %d", e.StatusCode)
}

// IsUnauthorized reports whether the error is an authentication rejection
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client talks to the remote commerce API. All storefront business
// operations go through it; the storefront holds no data of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a commerce API client
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Commerce.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Commerce.RequestTimeout,
		},
		logger: logger,
	}
}

// do performs a JSON request against the commerce API. A non-empty token is
// sent as a bearer credential. When out is non-nil the response body is
// decoded into it.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Detail = ""
		}

		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"detail": apiErr.Detail,
		}).Warn("Commerce API request rejected")

		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode commerce API response: %w", err)
		}
	}

	return nil
}
