package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"valens/internal/domain"
)

type CheckoutClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

// CreatePurchaseSession submits a purchase payload and returns the checkout
// session URL the buyer is redirected to.
func (c *CheckoutClient) CreatePurchaseSession(ctx context.Context, payload domain.PurchasePayload) (string, error) {
	var body checkoutSessionResponse
	if err := c.post(ctx, "/purchases", payload, &body); err != nil {
		return "", err
	}
	if body.URL == "" {
		return "", fmt.Errorf("checkout api returned empty session url for vendor %q", payload.VendorID)
	}
	return body.URL, nil
}

// SubmitSell forwards a sell request. The checkout service settles sells
// against the server-held balance, so no session URL comes back.
func (c *CheckoutClient) SubmitSell(ctx context.Context, payload domain.SellPayload) error {
	return c.post(ctx, "/sells", payload, nil)
}

func (c *CheckoutClient) post(ctx context.Context, path string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout payload: %w", err)
	}

	u := strings.TrimSuffix(c.baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to create checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute checkout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d from checkout api: %s", resp.StatusCode, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode checkout response: %w", err)
	}
	return nil
}

func NewCheckoutClient(httpClient *http.Client, baseURL string, apiKey string) *CheckoutClient {
	return &CheckoutClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
