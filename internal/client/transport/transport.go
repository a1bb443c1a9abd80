// Package transport defines the request/response contract APIClient speaks
// and an implementation on top of net/http.
package transport

import (
	"context"
	"time"
)

// HTTP verbs accepted by Execute.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Request is one call to the upstream. URL is absolute. A zero Timeout means
// the transport default.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
	Timeout time.Duration
}

// Response is the outcome of Execute.
//
// Success is true when an HTTP response was received, whatever its status.
// When Success is false StatusCode is 0 and ErrorMessage describes the
// failure.
type Response struct {
	Success      bool
	StatusCode   int
	Body         string
	ErrorMessage string
}

// Transport executes requests. Implementations must be safe for concurrent
// use and must not panic; every failure is reported through Response.
type Transport interface {
	Execute(ctx context.Context, req Request) Response
}

// Func adapts a function to Transport.
type Func func(ctx context.Context, req Request) Response

// Execute calls f.
func (f Func) Execute(ctx context.Context, req Request) Response {
	return f(ctx, req)
}
