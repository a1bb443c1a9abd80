package client

import (
	"context"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/client/result"
)

// async runs f on its own goroutine. The returned channel receives exactly
// one value and is then closed.
func async[T any](f func() result.Result[T]) <-chan result.Result[T] {
	ch := make(chan result.Result[T], 1)
	go func() {
		defer close(ch)
		ch <- f()
	}()
	return ch
}

// LoginAsync is the non-blocking form of Login.
func (c *APIClient) LoginAsync(ctx context.Context, creds models.Credentials) <-chan result.Result[models.LoginResponse] {
	return async(func() result.Result[models.LoginResponse] { return c.Login(ctx, creds) })
}

// GetPersonalInfoAsync is the non-blocking form of GetPersonalInfo.
func (c *APIClient) GetPersonalInfoAsync(ctx context.Context) <-chan result.Result[models.PersonalInfo] {
	return async(func() result.Result[models.PersonalInfo] { return c.GetPersonalInfo(ctx) })
}

// GetMarkbookAsync is the non-blocking form of GetMarkbook.
func (c *APIClient) GetMarkbookAsync(ctx context.Context) <-chan result.Result[models.Markbook] {
	return async(func() result.Result[models.Markbook] { return c.GetMarkbook(ctx) })
}

// GetGroupInfoAsync is the non-blocking form of GetGroupInfo.
func (c *APIClient) GetGroupInfoAsync(ctx context.Context) <-chan result.Result[models.GroupInfo] {
	return async(func() result.Result[models.GroupInfo] { return c.GetGroupInfo(ctx) })
}
