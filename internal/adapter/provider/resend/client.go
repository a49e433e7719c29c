package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
)

const defaultBaseURL = "https://api.resend.com"

// maxErrorBody bounds how much of a rejection body ends up in the error.
const maxErrorBody = 512

// Client sends email through the Resend HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public Resend API.
func NewClient(apiKey, from string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, apiKey, from, timeout, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, apiKey, from string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "resend"),
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send posts msg to /emails. Any non-2xx status is wrapped in domain.ErrDelivery.
func (c *Client) Send(ctx context.Context, msg email.Message) error {
	from := msg.From
	if from == "" {
		from = c.from
	}

	payload, err := json.Marshal(sendRequest{From: from, To: msg.To, Subject: msg.Subject, HTML: msg.HTML})
	if err != nil {
		return fmt.Errorf("resend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "resend request failed", slog.String("error", err.Error()))
		return fmt.Errorf("resend: %w: %w", domain.ErrDelivery, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "resend rejected email",
			slog.Int("status", resp.StatusCode),
			slog.Int("recipients", len(msg.To)),
		)
		return fmt.Errorf("resend: %w: status %d: %s", domain.ErrDelivery, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out sendResponse
	_ = json.Unmarshal(body, &out)

	c.log.DebugContext(ctx, "resend accepted email",
		slog.String("id", out.ID),
		slog.Int("recipients", len(msg.To)),
	)
	return nil
}
