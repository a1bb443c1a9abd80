package client

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/iisclient/internal/client/decoder"
	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/client/result"
	"github.com/dmitrijs2005/iisclient/internal/client/transport"
	"github.com/dmitrijs2005/iisclient/internal/client/vault"
	"github.com/dmitrijs2005/iisclient/internal/common"
	"github.com/dmitrijs2005/iisclient/internal/logging"
)

const (
	DefaultBaseURL = "https://iis.bsuir.by/api/v1"
	DefaultTimeout = 30 * time.Second
)

// Options configure New. Transport is required; everything else has a
// default.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Transport transport.Transport
	Logger    logging.Logger
	// Now is the clock used for session expiry. Defaults to time.Now.
	Now func() time.Time
}

// APIClient talks to the IIS API through a transport.Transport.
type APIClient struct {
	baseURL   string
	cookieURL *url.URL
	timeout   time.Duration
	transport transport.Transport
	vault     *vault.Vault
	log       logging.Logger
	now       func() time.Time

	// mu guards headers and orders every session transition, so the vault
	// and the Authorization header always change together.
	mu      sync.RWMutex
	headers map[string]string
}

// New builds an APIClient in the Unauthenticated state.
func New(opts Options) *APIClient {
	c := &APIClient{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		timeout:   opts.Timeout,
		transport: opts.Transport,
		log:       opts.Logger,
		now:       opts.Now,
		headers: map[string]string{
			common.AcceptHeaderName: common.JSONMediaType,
		},
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if opts.UserAgent != "" {
		c.headers[common.UserAgentHeaderName] = opts.UserAgent
	}
	if u, err := url.Parse(c.baseURL + "/"); err == nil {
		c.cookieURL = u
	}
	c.vault = vault.New(c.now)
	return c
}

// Login authenticates with the student number and password. On success the
// new session replaces any previous one.
func (c *APIClient) Login(ctx context.Context, creds models.Credentials) (res result.Result[models.LoginResponse]) {
	defer recoverInto(ctx, c.log, &res)

	headers := c.defaultHeaders()
	delete(headers, common.AuthorizationHeaderName)

	body := decoder.BuildLoginRequest(creds.StudentNumber, creds.Password, creds.RememberMe)
	resp := c.execute(ctx, transport.MethodPost, EndpointLogin, headers, body)
	if apiErr := responseError(resp); apiErr != nil {
		return result.Fail[models.LoginResponse](apiErr)
	}

	lr, ok := decoder.ParseLoginResponse(resp.Body, c.now())
	if !ok {
		return result.Fail[models.LoginResponse](decodeFailure(resp))
	}

	c.install(lr.Session)
	c.log.Info(ctx, "logged in", "user_id", lr.Identity.UserID)
	return result.Ok(lr)
}

// Logout drops the session. Calling it without a session is a no-op.
func (c *APIClient) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vault.ClearTokens()
	delete(c.headers, common.AuthorizationHeaderName)
}

// IsAuthenticated reports whether the vault holds a live access token.
func (c *APIClient) IsAuthenticated() bool {
	return c.vault.HasValidTokens()
}

// GetPersonalInfo fetches the personal information page. It is never cached.
func (c *APIClient) GetPersonalInfo(ctx context.Context) result.Result[models.PersonalInfo] {
	return fetch(ctx, c, EndpointPersonalInfo, decoder.ParsePersonalInfo)
}

// GetMarkbook fetches the transcript.
func (c *APIClient) GetMarkbook(ctx context.Context) result.Result[models.Markbook] {
	return fetch(ctx, c, EndpointMarkbook, decoder.ParseMarkbook)
}

// GetGroupInfo fetches the group, its curator and the roster.
func (c *APIClient) GetGroupInfo(ctx context.Context) result.Result[models.GroupInfo] {
	return fetch(ctx, c, EndpointGroupInfo, decoder.ParseGroupInfo)
}

// SetTokens installs an externally stored session. When expiresIn is not
// positive the lifetime is taken from the JWT exp claim of access, or the
// vault default if access is not a JWT.
func (c *APIClient) SetTokens(access, refresh string, expiresIn int64) error {
	if access == "" {
		return ErrEmptyToken
	}

	now := c.now()
	tokenType := vault.DefaultTokenType
	if strings.HasPrefix(access, "session-") {
		tokenType = decoder.SessionTokenType
	}
	if expiresIn <= 0 {
		if left, ok := jwtLifetime(access, now); ok {
			if left <= 0 {
				return ErrTokenExpired
			}
			expiresIn = left
		}
	}

	c.install(models.Session{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        tokenType,
		IssuedAt:         now,
		ExpiresInSeconds: expiresIn,
	})
	return nil
}

// AccessToken returns the access token while it is valid.
func (c *APIClient) AccessToken() (string, bool) {
	return c.vault.AccessToken()
}

// RefreshToken returns the stored refresh token, if any.
func (c *APIClient) RefreshToken() (string, bool) {
	return c.vault.RefreshToken()
}

// Session returns session metadata without token values.
func (c *APIClient) Session() (models.Session, bool) {
	return c.vault.Session()
}

// TimeUntilExpiration returns the seconds left on the session, never negative.
func (c *APIClient) TimeUntilExpiration() int64 {
	return c.vault.TimeUntilExpiration()
}

// SessionCookies returns the cookies the transport holds for the base URL.
func (c *APIClient) SessionCookies() []*http.Cookie {
	store, ok := c.transport.(transport.CookieStore)
	if !ok || c.cookieURL == nil {
		return nil
	}
	return store.Cookies(c.cookieURL)
}

// SetSessionCookies hands cookies saved by SessionCookies back to the
// transport.
func (c *APIClient) SetSessionCookies(cookies []*http.Cookie) {
	store, ok := c.transport.(transport.CookieStore)
	if !ok || c.cookieURL == nil {
		return
	}
	store.SetCookies(c.cookieURL, cookies)
}

// DefaultHeaders returns a copy of the headers sent on every request.
func (c *APIClient) DefaultHeaders() map[string]string {
	return c.defaultHeaders()
}

// Close wipes the session.
func (c *APIClient) Close() error {
	c.Logout()
	return c.vault.Close()
}

func fetch[T any](ctx context.Context, c *APIClient, endpoint string, decode func(string) (T, bool)) (res result.Result[T]) {
	defer recoverInto(ctx, c.log, &res)

	token, ok := c.vault.AccessToken()
	if !ok {
		c.expire(ctx, endpoint)
		return result.Fail[T](result.NotAuthenticated())
	}

	headers := c.defaultHeaders()
	headers[common.AuthorizationHeaderName] = common.BearerScheme + token

	resp := c.execute(ctx, transport.MethodGet, endpoint, headers, "")
	if apiErr := responseError(resp); apiErr != nil {
		if resp.StatusCode == http.StatusUnauthorized {
			c.revoke(ctx, endpoint, token)
		}
		return result.Fail[T](apiErr)
	}

	v, ok := decode(resp.Body)
	if !ok {
		c.log.Warn(ctx, "response did not match expected shape", "endpoint", endpoint, "status", resp.StatusCode)
		return result.Fail[T](decodeFailure(resp))
	}
	return result.Ok(v)
}

func (c *APIClient) execute(ctx context.Context, method, endpoint string, headers map[string]string, body string) transport.Response {
	if body != "" {
		headers[common.ContentTypeHeaderName] = common.JSONMediaType
	}

	requestID := uuid.NewString()
	started := time.Now()
	resp := c.transport.Execute(ctx, transport.Request{
		Method:  method,
		URL:     c.baseURL + endpoint,
		Headers: headers,
		Body:    body,
		Timeout: c.timeout,
	})
	elapsed := time.Since(started)

	if !resp.Success {
		c.log.Warn(ctx, "request failed", "request_id", requestID, "method", method, "endpoint", endpoint, "elapsed", elapsed, "error", resp.ErrorMessage)
		return resp
	}
	c.log.Debug(ctx, "request completed", "request_id", requestID, "method", method, "endpoint", endpoint, "status", resp.StatusCode, "elapsed", elapsed)
	return resp
}

// install stores s and points the Authorization header at its token.
func (c *APIClient) install(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vault.Store(s)
	c.headers[common.AuthorizationHeaderName] = common.BearerScheme + s.AccessToken
}

// expire drops an expired session. A session installed after the caller
// found no live token is kept.
func (c *APIClient) expire(ctx context.Context, endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleared := c.vault.ClearIfExpired()
	if c.vault.HasValidTokens() {
		return
	}
	delete(c.headers, common.AuthorizationHeaderName)
	if cleared {
		c.log.Info(ctx, "session expired", "endpoint", endpoint)
	}
}

// revoke drops the session the upstream rejected, identified by the token
// that was sent. A newer session is kept.
func (c *APIClient) revoke(ctx context.Context, endpoint, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.vault.ClearIfAccess(token) {
		c.log.Debug(ctx, "stale 401 ignored, session was replaced", "endpoint", endpoint)
		return
	}
	delete(c.headers, common.AuthorizationHeaderName)
	c.log.Info(ctx, "session rejected by upstream", "endpoint", endpoint)
}

func (c *APIClient) defaultHeaders() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.headers)
}


// responseError maps everything except a 2xx response to an APIError.
func responseError(resp transport.Response) *result.APIError {
	if !resp.Success {
		return result.TransportFailure(resp.ErrorMessage)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decoder.ParseError(resp.Body, resp.StatusCode)
	}
	return nil
}

func decodeFailure(resp transport.Response) *result.APIError {
	return result.DecodeFailure(decoder.ParseError(resp.Body, resp.StatusCode).Details)
}

// jwtLifetime returns the seconds until the exp claim of token. ok is false
// when token is not a JWT or has no exp.
func jwtLifetime(token string, now time.Time) (int64, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return 0, false
	}
	if claims.ExpiresAt == nil {
		return 0, false
	}
	return int64(claims.ExpiresAt.Sub(now) / time.Second), true
}

// recoverInto turns a panic escaping a transport or decoder into a failed
// result.
func recoverInto[T any](ctx context.Context, log logging.Logger, res *result.Result[T]) {
	if r := recover(); r != nil {
		log.Error(ctx, "recovered from panic", "panic", fmt.Sprint(r))
		*res = result.Fail[T](result.TransportFailure(fmt.Sprintf("internal error: %v", r)))
	}
}
