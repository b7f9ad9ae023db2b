package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrorHandlers splits transport failures into the two cases a caller
// can react to differently: the server answered and rejected the
// request, or nothing usable came back at all. Either handler may be
// nil; exactly one of them fires on failure.
type ErrorHandlers struct {
	// OnRejected receives the status code and raw body of a non-2xx
	// response.
	OnRejected func(status int, body []byte)

	// OnNoResponse receives the transport error when no response was
	// received (connection refused, timeout, canceled context).
	OnNoResponse func(err error)
}

// Client is a thin wrapper over outbound REST calls to the upstream
// media-service. It attaches the session's bearer token and dispatches
// results through callbacks; it never retries, de-duplicates or tracks
// request identity, so overlapping requests for the same resource
// resolve in whatever order the network delivers them. Callers merge
// responses into the state container themselves.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	logger  *slog.Logger
}

// New creates a media-service client. token supplies the current
// session's bearer token and may return "" for unauthenticated calls.
func New(baseURL string, token func() string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		token:   token,
		logger:  logger,
	}
}

// Do issues a request and dispatches the outcome. onSuccess receives
// the raw response body of a 2xx answer; the typed wrappers in this
// package decode it before handing it to their own callbacks.
func (c *Client) Do(ctx context.Context, method, path string, payload interface{}, onSuccess func(body []byte), handlers ErrorHandlers) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			dispatchNoResponse(handlers, fmt.Errorf("encode payload: %w", err))
			return
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		dispatchNoResponse(handlers, fmt.Errorf("build request: %w", err))
		return
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		dispatchNoResponse(handlers, err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		dispatchNoResponse(handlers, fmt.Errorf("read response: %w", err))
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		if handlers.OnRejected != nil {
			handlers.OnRejected(resp.StatusCode, respBody)
		}
		return
	}

	if onSuccess != nil {
		onSuccess(respBody)
	}
}

func dispatchNoResponse(handlers ErrorHandlers, err error) {
	if handlers.OnNoResponse != nil {
		handlers.OnNoResponse(err)
	}
}

// decodeInto wraps a typed success callback around raw body decoding.
// A body that fails to decode counts as no usable response.
func decodeInto[T any](onSuccess func(T), handlers ErrorHandlers) func([]byte) {
	if onSuccess == nil {
		return nil
	}
	return func(body []byte) {
		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			dispatchNoResponse(handlers, fmt.Errorf("decode response: %w", err))
			return
		}
		onSuccess(out)
	}
}
