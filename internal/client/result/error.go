// Package result holds the vocabulary shared by every API operation: the
// APIError taxonomy and the generic Result wrapper that carries either a
// payload or exactly one APIError.
package result

import (
	"errors"
	"fmt"
)

// Kind classifies an APIError.
type Kind int

const (
	// KindTransport means the request never produced an HTTP response
	// (network failure, timeout). Code is 0.
	KindTransport Kind = iota + 1
	// KindUnauthenticated is produced locally when no live token exists.
	// No request is sent. Code is 401.
	KindUnauthenticated
	// KindUpstream is any non-2xx response. Code is the HTTP status.
	KindUpstream
	// KindDecode means the body did not match the expected shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUpstream:
		return "upstream"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *APIError kind.
var (
	ErrTransport       = errors.New("transport failure")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUpstream        = errors.New("upstream error")
	ErrDecode          = errors.New("decode failure")
)

// Codes used for errors that did not come from an HTTP status.
const (
	CodeLocal           = 0
	CodeUnauthenticated = 401
)

// Fixed messages for locally generated errors.
const (
	MessageNotAuthenticated = "Not authenticated"
	MessageDecodeFailure    = "failed to parse response"
)

// APIError is the single error type surfaced by API operations.
//
// Message is short and meant for display. Details carries diagnostics such
// as the raw upstream payload and should not be shown to end users directly.
type APIError struct {
	Kind    Kind
	Code    int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s error (code %d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error (code %d): %s: %s", e.Kind, e.Code, e.Message, e.Details)
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == ErrTransport
	case KindUnauthenticated:
		return target == ErrUnauthenticated
	case KindUpstream:
		return target == ErrUpstream
	case KindDecode:
		return target == ErrDecode
	}
	return false
}

// NotAuthenticated builds the local 401 returned before any network call.
func NotAuthenticated() *APIError {
	return &APIError{Kind: KindUnauthenticated, Code: CodeUnauthenticated, Message: MessageNotAuthenticated}
}

// TransportFailure wraps a transport-supplied message.
func TransportFailure(message string) *APIError {
	if message == "" {
		message = "network error"
	}
	return &APIError{Kind: KindTransport, Code: CodeLocal, Message: message}
}

// DecodeFailure builds the error used when a 2xx body could not be decoded.
func DecodeFailure(details string) *APIError {
	return &APIError{Kind: KindDecode, Code: CodeLocal, Message: MessageDecodeFailure, Details: details}
}
