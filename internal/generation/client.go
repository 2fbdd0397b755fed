package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

const userAgent = "aiktp-sync/1.0"

// KeySource returns the account API key. It is read on every call since the
// key changes when the admin reconnects.
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	ConnectTimeout time.Duration
}

// Client talks to the remote generation API. Calls consume credits so
// nothing is retried.
type Client struct {
	httpClient    *http.Client
	connectClient *http.Client
	baseURL       string
	keys          KeySource
	logger        *zap.Logger
}

func New(keys KeySource, logger *zap.Logger, cfg Config) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		connectClient: &http.Client{Timeout: cfg.ConnectTimeout},
		baseURL:       cfg.BaseURL,
		keys:          keys,
		logger:        logger.With(zap.String("component", "generation")),
	}
}

// Generate runs task and returns the generated content.
func (c *Client) Generate(ctx context.Context, task string, info RecordInfo) (string, error) {
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return "", fmt.Errorf("load api key: %w", err)
	}
	if key == "" {
		return "", domain.ErrNoAPIKey
	}

	start := time.Now()
	_, body, err := c.post(ctx, c.httpClient, key, Request{Task: task, RecordInfo: info})
	if err != nil {
		return "", err
	}

	out, err := ParseEnvelope(body)
	if err != nil {
		c.logger.Warn("generation failed",
			zap.String("task", task),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	c.logger.Info("generation completed",
		zap.String("task", task),
		zap.Int("content_length", len(out)),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// CheckCredits asks for the remaining balance; the reply is returned as is.
func (c *Client) CheckCredits(ctx context.Context) (string, error) {
	return c.Generate(ctx, TaskCheckCredits, nil)
}

// Connect registers siteURL and its token with the account behind apiKey.
func (c *Client) Connect(ctx context.Context, apiKey, siteURL, siteToken string) (*ConnectResult, error) {
	if apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}

	status, body, err := c.post(ctx, c.connectClient, apiKey, ConnectRequest{
		Task:    TaskAddSite,
		SiteURL: siteURL,
		Token:   siteToken,
	})
	if err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(body)
	siteID := root.Get("data.siteId")
	if status == http.StatusOK && root.Get("data.status").String() == "success" && isSet(siteID) {
		c.logger.Info("site connected", zap.String("site_id", siteID.String()))
		return &ConnectResult{SiteID: siteID.String()}, nil
	}

	return nil, domain.NewAPIError(connectErrorMessage(root))
}

func (c *Client) post(ctx context.Context, hc *http.Client, key string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("User-Agent", userAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("execute request: %w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w: %v", domain.ErrNetwork, err)
	}
	return resp.StatusCode, body, nil
}

// ParseEnvelope extracts content from a generation reply. The order of the
// checks is relied upon by existing integrations:
//  1. a top level error wins
//  2. data.status decides when it is success or error
//  3. legacy shapes: non-empty data.content, then root content, then data itself
//  4. anything else is an invalid response
func ParseEnvelope(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", domain.ErrInvalidResponse
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return "", domain.ErrInvalidResponse
	}

	if e := root.Get("error"); isSet(e) {
		msg := "API error occurred"
		if m := e.Get("message"); isSet(m) {
			msg = m.String()
		} else if e.Type == gjson.String {
			msg = e.String()
		}
		return "", domain.NewAPIError(msg)
	}

	data := root.Get("data")
	if status := data.Get("status"); isSet(status) {
		switch status.String() {
		case "success":
			if c := data.Get("content"); isSet(c) {
				return text(c), nil
			}
			return "", fmt.Errorf("success status without content: %w", domain.ErrInvalidResponse)
		case "error":
			msg := "API returned error status"
			if m := data.Get("msg"); isSet(m) {
				msg = m.String()
			}
			return "", domain.NewAPIError(msg)
		}
	}

	if c := data.Get("content"); notEmpty(c) {
		return text(c), nil
	}
	if c := root.Get("content"); isSet(c) {
		return text(c), nil
	}
	if isSet(data) {
		return text(data), nil
	}

	return "", domain.ErrInvalidResponse
}

func connectErrorMessage(root gjson.Result) string {
	if m := root.Get("data.message"); isSet(m) {
		return m.String()
	}
	if m := root.Get("message"); isSet(m) {
		return m.String()
	}
	if e := root.Get("error"); isSet(e) {
		if e.IsObject() {
			if m := e.Get("message"); isSet(m) {
				return m.String()
			}
			return "Unknown error"
		}
		return e.String()
	}
	return "Connection failed"
}

// isSet treats JSON null like an absent key.
func isSet(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// notEmpty mirrors a loose emptiness check: absent, null, false, 0, "", "0"
// and empty containers are all empty.
func notEmpty(r gjson.Result) bool {
	if !isSet(r) {
		return false
	}
	switch r.Type {
	case gjson.False:
		return false
	case gjson.Number:
		return r.Float() != 0
	case gjson.String:
		s := r.String()
		return s != "" && s != "0"
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return len(r.Map()) > 0
	}
	return true
}

func text(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.String()
	}
	return r.Raw
}
