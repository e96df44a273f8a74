package remote

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

	"github.com/adithyasudev/entry-voucher-forge/internal/apperrors"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/ports/gateways"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
)

const (
	itemsPath  = "/item"
	submitPath = "/header/multiple"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 4 << 20
)

// Client talks to the remote sales service: it serves the item catalog and
// stores submitted vouchers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var (
	_ gateways.ItemCatalog    = (*Client)(nil)
	_ gateways.VoucherGateway = (*Client)(nil)
)

// FetchItems implements gateways.ItemCatalog.
func (c *Client) FetchItems(ctx context.Context) ([]domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+itemsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build item master request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "failed to fetch item master")
	if err != nil {
		return nil, err
	}

	var items []domain.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode item master: %w", err)
	}
	logger.Debug("Fetched item master", slog.Int("count", len(items)))
	return items, nil
}

// SubmitVoucher implements gateways.VoucherGateway.
func (c *Client) SubmitVoucher(ctx context.Context, submission domain.Submission) (json.RawMessage, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sales data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "failed to save sales data")
	if err != nil {
		return nil, err
	}
	return acknowledgment(body), nil
}

func (c *Client) do(req *http.Request, failure string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, failure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, failure, fmt.Errorf("reading response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewAppError(resp.StatusCode, failure, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return body, nil
}

// acknowledgment keeps JSON bodies as they are and wraps anything else so the
// result is always valid JSON.
func acknowledgment(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(map[string]string{"response": string(trimmed)})
	return wrapped
}
