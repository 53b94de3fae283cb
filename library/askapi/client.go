// Package askapi is the HTTP client of the question-answering API.
package askapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errors "github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"

	"github.com/Laisky/video-search/library/log"
)

const (
	askPath    = "/ask"
	healthPath = "/health"
	userAgent  = "video-search"
	// logBodyLimit caps the number of response bytes logged for debugging.
	logBodyLimit = 4096

	headerRequestID = "X-Request-Id"
)

type ctxKey struct{}

// WithRequestID attaches the id sent as X-Request-Id by the next call made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id attached by WithRequestID, or empty.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Option configures the Client instance.
type Option func(*Client) error

// WithHTTPClient overrides the HTTP client used to talk to the API.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client != nil {
			c.client = client
			c.customClient = true
		}
		return nil
	}
}

// WithTimeout bounds every call; zero keeps the environment default of no deadline.
//
// Combined with WithHTTPClient, in any order, the timeout is set on a copy of
// the given client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout < 0 {
			return errors.Errorf("timeout must not be negative, got %s", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// Client calls the question-answering API rooted at a base URL.
type Client struct {
	baseURL string
	client  *http.Client
	logger  logSDK.Logger

	timeout      time.Duration
	customClient bool
}

// NewClient constructs a Client for baseURL, which must be an absolute http(s) URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api base url %q", baseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("api base url %q must be an absolute http(s) url", baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  log.Logger.Named("askapi"),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err = opt(c); err != nil {
			return nil, errors.Wrap(err, "apply option")
		}
	}

	if err = c.applyTimeout(); err != nil {
		return nil, err
	}

	return c, nil
}

// applyTimeout installs the configured timeout on the HTTP client
func (c *Client) applyTimeout() error {
	if c.timeout == 0 {
		return nil
	}

	if c.customClient {
		client := *c.client
		client.Timeout = c.timeout
		c.client = &client
		return nil
	}

	client, err := gutils.NewHTTPClient(gutils.WithHTTPClientTimeout(c.timeout))
	if err != nil {
		return errors.Wrap(err, "new http client")
	}
	c.client = client
	return nil
}

// BaseURL returns the API origin the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ask posts question to /ask and returns the decoded envelope.
//
// Every failure is an *Error, see AsError.
func (c *Client) Ask(ctx context.Context, question string) (*AskResponse, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return nil, errors.New("question cannot be empty")
	}

	var reqBody bytes.Buffer
	if err := json.NewEncoder(&reqBody).Encode(AskRequest{Question: trimmed}); err != nil {
		return nil, errors.Wrap(err, "marshal ask request")
	}

	status, body, err := c.do(ctx, http.MethodPost, askPath, &reqBody)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, newError(ErrKindApplication, status, detailMessage(body), nil)
	}

	resp := new(AskResponse)
	if err = json.Unmarshal(body, resp); err != nil {
		return nil, newError(ErrKindDecode, status, "invalid response from server",
			errors.Wrap(err, "unmarshal ask response"))
	}
	if resp.Status == StatusError {
		return nil, newError(ErrKindApplication, status, ServerFailureMessage, nil)
	}

	return resp, nil
}

// Health probes GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	status, body, err := c.do(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newError(ErrKindApplication, status, detailMessage(body), nil)
	}

	resp := new(HealthResponse)
	if err = json.Unmarshal(body, resp); err != nil {
		return nil, newError(ErrKindDecode, status, "invalid response from server",
			errors.Wrap(err, "unmarshal health response"))
	}

	return resp, nil
}

// do sends the request and returns the status code and the full body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "create %s request", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(headerRequestID, reqID)

	logger := c.logger.With(zap.String("request_id", reqID))
	logger.Debug("outgoing http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	startAt := time.Now()
	resp, err := c.client.Do(req) //nolint: bodyclose
	if err != nil {
		return 0, nil, newError(ErrKindNetwork, 0, err.Error(),
			errors.Wrapf(err, "send %s request", path))
	}
	defer gutils.CloseWithLog(resp.Body, logger)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, newError(ErrKindNetwork, resp.StatusCode, err.Error(),
			errors.Wrapf(err, "read %s response body", path))
	}

	truncatedBody, truncated := truncateForLog(respBody, logBodyLimit)
	logger.Debug("incoming http response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncatedBody),
		zap.Bool("body_truncated", truncated),
		zap.Duration("cost", time.Since(startAt)),
	)

	return resp.StatusCode, respBody, nil
}

// detailMessage extracts the FastAPI detail of a failed response, or FallbackMessage.
func detailMessage(body []byte) string {
	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return FallbackMessage
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		if detail = strings.TrimSpace(detail); detail != "" {
			return detail
		}
		return FallbackMessage
	}

	var items []validationError
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) != 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return FallbackMessage
}

// truncateForLog limits the payload logged for debugging and reports whether truncation occurred.
func truncateForLog(body []byte, limit int) (string, bool) {
	if len(body) <= limit {
		return string(body), false
	}
	return string(body[:limit]), true
}
