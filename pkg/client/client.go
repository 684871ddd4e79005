// Package client talks to the farm backend's REST contract: JSON bodies in,
// {success, data} envelopes out.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxBody = 4 << 20

type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		log:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL is the backend root all collection paths are joined to.
func (c *Client) BaseURL() string { return c.base }

// CloseIdleConnections releases pooled keep-alive connections.
func (c *Client) CloseIdleConnections() { c.http.CloseIdleConnections() }

// APIError is a non-2xx response, or a 2xx whose envelope says success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if t := http.StatusText(e.Status); t != "" {
		return t
	}
	return fmt.Sprintf("status %d", e.Status)
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do sends one request. When out is non-nil the envelope's data (or a bare
// JSON array, which older list endpoints return) is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	raw = bytes.TrimSpace(raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return &APIError{Status: resp.StatusCode, Message: env.message()}
	}
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '[' {
		if out == nil {
			return nil
		}
		return json.Unmarshal(raw, out)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if env.Success != nil && !*env.Success {
		msg := env.message()
		if msg == "" {
			msg = "request was not successful"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}

// Collection is one REST collection such as /crops, typed by its read shape.
type Collection[R any] struct {
	c        *Client
	name     string
	listPath string
}

func NewCollection[R any](c *Client, name string) Collection[R] {
	return Collection[R]{c: c, name: name, listPath: "/" + name}
}

// WithListPath overrides the GET path, e.g. "/activities/all".
func (col Collection[R]) WithListPath(p string) Collection[R] {
	col.listPath = p
	return col
}

func (col Collection[R]) Name() string { return col.name }

func (col Collection[R]) List(ctx context.Context) ([]R, error) {
	var out []R
	if err := col.c.do(ctx, http.MethodGet, col.listPath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []R{}
	}
	return out, nil
}

func (col Collection[R]) Create(ctx context.Context, body any) error {
	return col.c.do(ctx, http.MethodPost, "/"+col.name, body, nil)
}

func (col Collection[R]) Update(ctx context.Context, id string, body any) error {
	if id == "" {
		return fmt.Errorf("update %s: missing id", col.name)
	}
	return col.c.do(ctx, http.MethodPut, "/"+col.name+"/"+url.PathEscape(id), body, nil)
}

func (col Collection[R]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete %s: missing id", col.name)
	}
	return col.c.do(ctx, http.MethodDelete, "/"+col.name+"/"+url.PathEscape(id), nil, nil)
}
