package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/modelproof/biasradar-api/pkg/logger"
)

// Error reports a failed downstream call. Detail carries whatever diagnostic
// text the analysis service supplied; StatusCode is zero for transport
// failures.
type Error struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analyzer returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("analyzer request failed: %s", e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// request is the wire contract with the analysis service.
type request struct {
	Text      string   `json:"text"`
	BiasTypes []string `json:"bias_types"`
}

// errorBody is the shape the analysis service uses for failures.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client calls the downstream bias-analysis service. The payload it returns
// is opaque to the gateway; the client only enforces timeouts and maps
// failures.
type Client struct {
	baseURL     string
	scanTimeout time.Duration
	fixTimeout  time.Duration
	httpClient  *http.Client
	logger      *logger.Logger
}

func NewClient(baseURL string, scanTimeout, fixTimeout time.Duration, logger *logger.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		scanTimeout: scanTimeout,
		fixTimeout:  fixTimeout,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// Scan submits text for bias detection.
func (c *Client) Scan(ctx context.Context, text string, biasTypes []string) (json.RawMessage, error) {
	return c.post(ctx, "/scan", c.scanTimeout, request{Text: text, BiasTypes: biasTypes})
}

// Fix submits text for bias rewriting. Fix calls get the longer budget
// because the analyzer invokes a language model.
func (c *Client) Fix(ctx context.Context, text string, biasTypes []string) (json.RawMessage, error) {
	return c.post(ctx, "/fix", c.fixTimeout, request{Text: text, BiasTypes: biasTypes})
}

func (c *Client) post(ctx context.Context, path string, timeout time.Duration, payload request) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Detail: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Detail: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("analyzer request failed", err, zap.String("path", path))
		return nil, &Error{Detail: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Detail: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("analyzer returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &Error{StatusCode: resp.StatusCode, Detail: errorDetail(data)}
	}

	return json.RawMessage(data), nil
}

// errorDetail pulls a human-readable message out of an analyzer failure
// body, falling back to the raw body.
func errorDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}

	const maxDetail = 512
	if len(body) > maxDetail {
		body = body[:maxDetail]
	}
	return string(body)
}
