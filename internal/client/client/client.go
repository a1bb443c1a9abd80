package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/client/result"
)

// Fixed endpoints relative to the base URL.
const (
	EndpointLogin        = "/auth/login"
	EndpointPersonalInfo = "/personal-information"
	EndpointMarkbook     = "/markbook"
	EndpointGroupInfo    = "/student-groups/user-group-info"
)

// Client is the contract of the IIS API client.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) result.Result[models.LoginResponse]
	Logout()
	IsAuthenticated() bool

	GetPersonalInfo(ctx context.Context) result.Result[models.PersonalInfo]
	GetMarkbook(ctx context.Context) result.Result[models.Markbook]
	GetGroupInfo(ctx context.Context) result.Result[models.GroupInfo]

	SetTokens(access, refresh string, expiresIn int64) error
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	Session() (models.Session, bool)
	TimeUntilExpiration() int64

	// SessionCookies and SetSessionCookies save and reinstall the upstream
	// session cookies. Both are no-ops when the transport keeps no cookies.
	SessionCookies() []*http.Cookie
	SetSessionCookies(cookies []*http.Cookie)

	Close() error
}

var _ Client = (*APIClient)(nil)
