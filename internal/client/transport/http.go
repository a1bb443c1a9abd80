package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/iisclient/internal/logging"
)

const (
	// DefaultTimeout applies when neither the request nor the options set one.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryBackoff is the first delay between attempts.
	DefaultRetryBackoff = 500 * time.Millisecond

	maxBodySize = 8 << 20
)

// HTTPOptions configure NewHTTPTransport.
type HTTPOptions struct {
	// Client is used as is when set; otherwise a client with a cookie jar is
	// created. The upstream keeps the login session in cookies.
	Client *http.Client
	// Timeout per attempt when the request does not carry one.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts for a GET after a network
	// failure or a 502/503/504.
	MaxRetries int
	// RetryBackoff is the base of the exponential backoff.
	RetryBackoff time.Duration
	// UserAgent is sent unless the request sets its own.
	UserAgent string
	Logger    logging.Logger
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	client     *http.Client
	timeout    time.Duration
	maxRetries uint64
	backoff    time.Duration
	userAgent  string
	log        logging.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds an HTTPTransport.
func NewHTTPTransport(opts HTTPOptions) *HTTPTransport {
	c := opts.Client
	if c == nil {
		// cookiejar.New only fails on a bad PublicSuffixList, and we pass none
		jar, _ := cookiejar.New(nil)
		c = &http.Client{Jar: jar}
	}
	t := &HTTPTransport{
		client:    c,
		timeout:   opts.Timeout,
		backoff:   opts.RetryBackoff,
		userAgent: opts.UserAgent,
		log:       opts.Logger,
	}
	if t.timeout <= 0 {
		t.timeout = DefaultTimeout
	}
	if t.backoff <= 0 {
		t.backoff = DefaultRetryBackoff
	}
	if opts.MaxRetries > 0 {
		t.maxRetries = uint64(opts.MaxRetries)
	}
	if t.log == nil {
		t.log = logging.Discard()
	}
	return t
}

// Execute performs req. A GET is retried with exponential backoff after a
// network failure or a 502/503/504; other methods are sent once. The
// returned body is capped at 8 MiB.
func (t *HTTPTransport) Execute(ctx context.Context, req Request) Response {
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(t.backoff))

	var out Response
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		resp, err := t.do(ctx, req)
		if err != nil {
			t.log.Debug(ctx, "request attempt failed", "method", req.Method, "url", req.URL, "attempt", attempt, "error", err)
			out = Response{ErrorMessage: describe(err)}
			if ctx.Err() != nil || !idempotent(req.Method) {
				return err
			}
			return retry.RetryableError(err)
		}
		out = resp
		if idempotent(req.Method) && retryableStatus(resp.StatusCode) {
			t.log.Debug(ctx, "request attempt got retryable status", "method", req.Method, "url", req.URL, "attempt", attempt, "status", resp.StatusCode)
			return retry.RetryableError(fmt.Errorf("status %d", resp.StatusCode))
		}
		return nil
	})
	if err != nil && !out.Success && out.ErrorMessage == "" {
		out.ErrorMessage = describe(err)
	}
	return out
}

func (t *HTTPTransport) do(ctx context.Context, req Request) (Response, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = t.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	method := req.Method
	if method == "" {
		method = MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return Response{}, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if t.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("read body: %w", err)
	}
	return Response{Success: true, StatusCode: resp.StatusCode, Body: string(data)}, nil
}

// idempotent reports whether a request may be sent again. An empty method
// is sent as GET.
func idempotent(method string) bool {
	return method == MethodGet || method == ""
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func describe(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return err.Error()
	}
}
