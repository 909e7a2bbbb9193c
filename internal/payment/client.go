package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aarohi-store/storefront/internal/models"
)

// ErrNoCheckoutURL is returned when the service answers successfully but the
// body carries no usable redirect URL.
var ErrNoCheckoutURL = errors.New("no checkout URL received")

// Client talks to the external payment-session service. One POST per
// checkout attempt; the request timeout makes a hung service resolve to a
// failure instead of blocking the attempt forever.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type sessionResponse struct {
	URL string `json:"url"`
}

// CreateSession posts the order payload and returns the redirect URL.
// Transport errors, non-2xx statuses, undecodable bodies, and missing URLs
// are all submission failures.
func (c *Client) CreateSession(ctx context.Context, payload models.OrderPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("payment service returned status %d", resp.StatusCode)
	}

	var sr sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("decode payment response: %w", err)
	}
	if sr.URL == "" {
		return "", ErrNoCheckoutURL
	}
	return sr.URL, nil
}
