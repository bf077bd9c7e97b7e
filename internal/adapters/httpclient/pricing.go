package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type PricingClient struct {
	http    *http.Client
	baseURL string
}

type priceResponse struct {
	PriceInUSD float64 `json:"priceInUsd"`
}

// GetPriceUSD fetches the current USD price for one token address.
func (c *PricingClient) GetPriceUSD(ctx context.Context, address string) (float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + address

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request for token %q: %w", address, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for token %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status code %d for token %q: %s", resp.StatusCode, address, resp.Status)
	}

	var body priceResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode response for token %q: %w", address, err)
	}

	if body.PriceInUSD <= 0 {
		return 0, fmt.Errorf("pricing api returned non-positive price for token %q: %v", address, body.PriceInUSD)
	}

	return body.PriceInUSD, nil
}

func NewPricingClient(httpClient *http.Client, baseURL string) *PricingClient {
	return &PricingClient{http: httpClient, baseURL: baseURL}
}
