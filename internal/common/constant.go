// Package common contains shared constants and sentinel errors used across
// the IIS client components.
package common

// Header names used on outbound IIS requests.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	AcceptHeaderName        = "Accept"
	UserAgentHeaderName     = "User-Agent"

	BearerScheme  = "Bearer "
	JSONMediaType = "application/json"
)
