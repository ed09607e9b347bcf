// Package datastore is a client for the managed REST record store that
// holds the tracker's remote collections.
package datastore

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/logging"
	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/resilience"
)

const (
	KindNote         = "Todo"
	KindFantasyUser  = "FantasyUser"
	KindFantasyPoint = "FantasyPoint"
	KindMatchStat    = "MatchStat"

	defaultTimeout = 10 * time.Second
)

var (
	errTransient   = crerr.New("datastore transient failure")
	ErrNotFound    = crerr.New("datastore record not found")
	ErrUnavailable = crerr.New("datastore unavailable")
)

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	http    *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

type listEnvelope[T any] struct {
	Items []T `json:"items"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid REMOTE_HTTP_BASE_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "ipl-fantasy-tracker",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		logger:  logger.Named("datastore"),
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}, nil
}

func list[T any](ctx context.Context, c *Client, kind string, filter url.Values) ([]T, error) {
	path := recordsPath(kind, "")
	if len(filter) > 0 {
		path += "?" + filter.Encode()
	}

	var env listEnvelope[T]
	if err := c.do(ctx, fasthttp.MethodGet, path, nil, &env); err != nil {
		return nil, crerr.Wrapf(err, "list %s", kind)
	}
	if env.Items == nil {
		return []T{}, nil
	}
	return env.Items, nil
}

func create[T any](ctx context.Context, c *Client, kind string, record any) (T, error) {
	var out T
	if err := c.do(ctx, fasthttp.MethodPost, recordsPath(kind, ""), record, &out); err != nil {
		var zero T
		return zero, crerr.Wrapf(err, "create %s", kind)
	}
	return out, nil
}

func update[T any](ctx context.Context, c *Client, kind, id string, record any) (T, error) {
	if strings.TrimSpace(id) == "" {
		var zero T
		return zero, crerr.Newf("update %s: record id is required", kind)
	}
	var out T
	if err := c.do(ctx, fasthttp.MethodPut, recordsPath(kind, id), record, &out); err != nil {
		var zero T
		return zero, crerr.Wrapf(err, "update %s %s", kind, id)
	}
	return out, nil
}

func (c *Client) delete(ctx context.Context, kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return crerr.Newf("delete %s: record id is required", kind)
	}
	if err := c.do(ctx, fasthttp.MethodDelete, recordsPath(kind, id), nil, nil); err != nil {
		return crerr.Wrapf(err, "delete %s %s", kind, id)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "datastore circuit breaker rejected request", "state", c.breaker.State(), "path", path)
		return crerr.Mark(crerr.Wrap(err, "datastore is temporarily unavailable"), ErrUnavailable)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		if err := encodeBody(buf, body); err != nil {
			return crerr.Wrap(err, "marshal record")
		}
		req.Header.SetContentType("application/json")
		req.SetBody(buf.B)
	}

	err := c.http.DoDeadline(req, resp, c.deadline(ctx))
	if err != nil {
		callErr := crerr.Mark(fmt.Errorf("%w: %s %s: %v", errTransient, method, path, err), ErrUnavailable)
		c.recordResult(callErr)
		return callErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusNotFound:
		c.recordResult(nil)
		return crerr.Wrapf(ErrNotFound, "%s %s", method, path)
	case status == fasthttp.StatusRequestTimeout || status == fasthttp.StatusTooManyRequests || status >= 500:
		callErr := crerr.Mark(fmt.Errorf("%w: %s %s: status=%d body=%s", errTransient, method, path, status, truncate(resp.Body(), 512)), ErrUnavailable)
		c.recordResult(callErr)
		return callErr
	case status/100 != 2:
		c.recordResult(nil)
		return crerr.Newf("%s %s: status=%d body=%s", method, path, status, truncate(resp.Body(), 512))
	}
	c.recordResult(nil)

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return crerr.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

// deadline is the earlier of the context deadline and the client timeout.
// encodeBody streams body into a pooled buffer, dropping the encoder's
// trailing newline.
func encodeBody(buf *bytebufferpool.ByteBuffer, body any) error {
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(body); err != nil {
		return err
	}
	if n := len(buf.B); n > 0 && buf.B[n-1] == '\n' {
		buf.B = buf.B[:n-1]
	}
	return nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func (c *Client) recordResult(err error) {
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func recordsPath(kind, id string) string {
	path := "/v1/records/" + url.PathEscape(kind)
	if id != "" {
		path += "/" + url.PathEscape(id)
	}
	return path
}

func validateBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("base url is required")
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "...(truncated)"
}
