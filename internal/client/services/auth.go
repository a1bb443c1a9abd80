package services

import (
	"context"

	"github.com/dmitrijs2005/iisclient/internal/client/client"
	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against IIS. The password slice is wiped before
//     Login returns, whatever the outcome.
//   - Logout: drop the in-memory session. It never touches a remembered one.
//   - Close: release the underlying client.
type AuthService interface {
	Login(ctx context.Context, studentNumber string, password []byte, rememberMe bool) (models.UserIdentity, error)
	Logout(ctx context.Context)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

// Login returns the *result.APIError of a failed login as the error.
func (a *authService) Login(ctx context.Context, studentNumber string, password []byte, rememberMe bool) (models.UserIdentity, error) {
	defer common.WipeByteArray(password)

	if studentNumber == "" || len(password) == 0 {
		return models.UserIdentity{}, common.ErrEmptyCredential
	}

	lr, err := a.client.Login(ctx, models.Credentials{
		StudentNumber: studentNumber,
		Password:      string(password),
		RememberMe:    rememberMe,
	}).Unwrap()
	if err != nil {
		return models.UserIdentity{}, err
	}
	return lr.Identity, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.client.Logout()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
