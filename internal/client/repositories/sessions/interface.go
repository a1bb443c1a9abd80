package sessions

import (
	"context"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

// Repository stores the single remembered session.
type Repository interface {
	// Save replaces any previously saved session.
	Save(ctx context.Context, s models.StoredSession) error

	// Load returns common.ErrorNotFound when nothing is saved.
	Load(ctx context.Context) (models.StoredSession, error)

	// Delete removes the saved session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}
