package bulk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aiktp_sync/internal/domain"
)

// Client drives a bulk run against the admin API of a running server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    string
}

func NewClient(baseURL, session string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type failure struct {
	Message          string `json:"message"`
	NotEnoughCredits bool   `json:"not_enough_credits"`
}

type queued struct {
	ProductIDs []int64          `json:"product_ids"`
	Type       domain.Operation `json:"type"`
}

// Enqueue stores a selection on the server for a later Queue call. It
// returns the number of records accepted.
func (c *Client) Enqueue(ctx context.Context, ids []int64, op domain.Operation) (int, error) {
	data, err := c.call(ctx, "/admin/bulk", map[string]any{"post_ids": ids, "type": op})
	if err != nil {
		return 0, err
	}
	var out struct {
		ProductCount int `json:"product_count"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("decode enqueue: %w", err)
	}
	return out.ProductCount, nil
}

// Queue fetches the queued job. The server hands it out once.
func (c *Client) Queue(ctx context.Context) (*domain.BulkJob, error) {
	data, err := c.call(ctx, "/admin/bulk/queue", struct{}{})
	if err != nil {
		return nil, err
	}
	var q queued
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode queue: %w", err)
	}
	return NewJob(q.ProductIDs, q.Type), nil
}

// Process generates content for one record through the server.
func (c *Client) Process(ctx context.Context, recordID int64, op domain.Operation) error {
	_, err := c.call(ctx, "/admin/bulk/generate", map[string]any{"post_id": recordID, "type": op})
	return err
}

func (c *Client) call(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.session)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %v", domain.ErrNetwork, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, domain.ErrInvalidResponse)
	}
	if env.Success {
		return env.Data, nil
	}

	var f failure
	_ = json.Unmarshal(env.Data, &f)
	if f.Message == "" {
		f.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	if f.NotEnoughCredits {
		return nil, &domain.APIError{Message: f.Message, Kind: domain.KindInsufficientCredits}
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", f.Message, domain.ErrNotFound)
	}
	return nil, &domain.APIError{Message: f.Message, Kind: domain.KindGeneric}
}
