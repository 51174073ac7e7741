package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sunstateclean/sunstate-backend/pkg/config"
	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
)

const (
	quotesPath                  = "v1/quotes"
	leadsPath                   = "v1/leads"
	errorBodyReadLimit    int64 = 1024
	defaultRequestTimeout       = 10 * time.Second
)

var errBaseURLRequired = errors.New("bookings base url is required")

// Client wraps the external bookings API that receives quotes and leads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured bookings base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the bookings client from configuration.
func NewClient(cfg config.BookingsConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	if client.baseURL == "" {
		return nil, errBaseURLRequired
	}

	return client, nil
}

// QuotePayload is the wire body sent when a visitor submits a quote.
type QuotePayload struct {
	Draft       any    `json:"draft"`
	Breakdown   any    `json:"breakdown"`
	SubmittedAt string `json:"submitted_at"`
}

// LeadPayload is the wire body sent for contact-form leads.
type LeadPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Service     string `json:"service,omitempty"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

// SubmitQuote posts a finalized quote and returns the confirmation id.
func (c *Client) SubmitQuote(ctx context.Context, payload QuotePayload) (string, error) {
	var resp struct {
		QuoteID string `json:"quote_id"`
	}
	if err := c.post(ctx, quotesPath, payload, &resp); err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.QuoteID) == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "bookings response missing quote id")
	}
	return resp.QuoteID, nil
}

// SubmitLead forwards a contact-form lead and returns the lead id.
func (c *Client) SubmitLead(ctx context.Context, payload LeadPayload) (string, error) {
	var resp struct {
		LeadID string `json:"lead_id"`
	}
	if err := c.post(ctx, leadsPath, payload, &resp); err != nil {
		return "", err
	}
	return resp.LeadID, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "bookings client not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal bookings request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build bookings request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute bookings request")
	}
	defer func() { _ = resp.Body.Close() }()

	// Any non-2xx is a transport failure to the caller: the draft stays
	// intact and the operation may be retried.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(
			pkgerrors.CodeDependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
			"bookings request failed",
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode bookings response")
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), strings.TrimLeft(path, "/"))
}
