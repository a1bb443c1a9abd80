package transport

import (
	"net/http"
	"net/url"
)

// CookieStore is implemented by transports that keep the upstream session
// in cookies. The API client uses it to save and reinstall that session.
type CookieStore interface {
	Cookies(u *url.URL) []*http.Cookie
	SetCookies(u *url.URL, cookies []*http.Cookie)
}

var _ CookieStore = (*HTTPTransport)(nil)

// Cookies returns the cookies the jar would send to u. Only Name and Value
// are set. It returns nil when the client has no jar.
func (t *HTTPTransport) Cookies(u *url.URL) []*http.Cookie {
	if t.client.Jar == nil {
		return nil
	}
	return t.client.Jar.Cookies(u)
}

// SetCookies installs cookies as if u had set them. Cookies without a Path
// get the jar's default path for u.
func (t *HTTPTransport) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if t.client.Jar == nil || len(cookies) == 0 {
		return
	}
	t.client.Jar.SetCookies(u, cookies)
}
