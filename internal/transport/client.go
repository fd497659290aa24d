// Package transport performs the HTTP calls behind every GEDO façade. It
// owns the base URL, the timeouts, the bearer-token request interceptor and
// the 401 response interceptor that tears down the session.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/session"
)

// DefaultTimeout is the baseline request deadline. Downloads and exports
// override it to 60s, the import finalize step to 120s.
const DefaultTimeout = 30 * time.Second

// Config holds the transport configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Store supplies the bearer token at request-issue time.
	Store session.Store

	// OnSessionExpired runs once when a 401 clears an active session. The
	// hosting application registers the "back to login" behavior here
	// instead of the transport reaching into any routing layer.
	OnSessionExpired func()

	Logger *zap.Logger

	// RequestsPerSecond throttles outgoing calls. Zero means unlimited.
	RequestsPerSecond float64
}

// DefaultConfig returns the transport defaults for a given backend URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
	}
}

// Client is the shared HTTP transport. All façades go through the same
// instance, so a token update is observed by every call issued after it.
type Client struct {
	baseURL   string
	timeout   time.Duration
	store     session.Store
	onExpired func()
	logger    *zap.Logger
	limiter   *rate.Limiter

	httpClient *http.Client
}

// New builds a Client from cfg. A nil Store behaves as an anonymous
// session; a nil Logger disables request logging.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Store == nil {
		cfg.Store = session.NewMemStore()
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		store:     cfg.Store,
		onExpired: cfg.OnSessionExpired,
		logger:    cfg.Logger,
		limiter:   limiter,
		// Timeouts are handled per request through the context so that
		// per-call overrides work; the http.Client itself has none.
		httpClient: &http.Client{},
	}
}

// Store exposes the session store backing this transport.
func (c *Client) Store() session.Store { return c.store }

// MultipartForm describes a multipart/form-data body: plain fields plus at
// most one file part.
type MultipartForm struct {
	Fields    map[string]string
	FileField string
	FileName  string
	File      io.Reader
}

// Request describes one backend call. Body is JSON-encoded when set; Form
// takes precedence over Body. Timeout overrides the client default.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Form    *MultipartForm
	Timeout time.Duration
}

// Response is the raw outcome of a successful (2xx) call.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Do issues one request. It attaches the current bearer token when the
// session store holds one, maps failures into the NetworkError /
// TimeoutError / HTTPError taxonomy, and on a 401 against an authenticated
// request (the login route excepted) clears the session and fires the
// expired callback exactly once.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TimeoutError{Err: err}
		}
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// The token is read at issue time, not completion time: a logout that
	// races an in-flight call never strips that call's credential.
	token, authed := c.store.Token()
	if authed {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		classified := classifyTransportErr(err)
		c.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.String("request_id", requestID),
			zap.Error(classified))
		return nil, classified
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportErr(err)
	}

	c.logger.Debug("request",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
	}

	httpErr := &HTTPError{
		Status:  resp.StatusCode,
		Message: backendMessage(respBody),
		Body:    respBody,
	}

	// A 401 from the login route is a credentials failure, not an expiry;
	// it must not tear down a session that may still be valid.
	if resp.StatusCode == http.StatusUnauthorized && authed && !strings.Contains(req.Path, "/auth/login") {
		c.expireSession()
	}

	return nil, httpErr
}

// expireSession clears the token and notifies the host. Clear reports
// whether a token was actually removed, which keeps the callback to one
// firing per session even when several in-flight calls hit 401 together.
func (c *Client) expireSession() {
	cleared, err := c.store.Clear()
	if err != nil {
		c.logger.Warn("clearing expired session", zap.Error(err))
	}
	if cleared {
		c.logger.Info("session expired, credentials cleared")
		if c.onExpired != nil {
			c.onExpired()
		}
	}
}

func encodeBody(req Request) (io.Reader, string, error) {
	if req.Form != nil {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for name, value := range req.Form.Fields {
			if err := w.WriteField(name, value); err != nil {
				return nil, "", fmt.Errorf("write form field %s: %w", name, err)
			}
		}
		if req.Form.File != nil {
			part, err := w.CreateFormFile(req.Form.FileField, req.Form.FileName)
			if err != nil {
				return nil, "", fmt.Errorf("create form file: %w", err)
			}
			if _, err := io.Copy(part, req.Form.File); err != nil {
				return nil, "", fmt.Errorf("copy form file: %w", err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}

	return nil, "", nil
}
