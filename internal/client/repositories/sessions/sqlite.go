package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/common"
	"github.com/dmitrijs2005/iisclient/internal/dbx"
)

const singletonID = 1

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the singleton row. Times are stored as unix seconds.
func (r *SQLiteRepository) Save(ctx context.Context, s models.StoredSession) error {
	query := `INSERT INTO sessions (id, student_number, ciphertext, nonce, expires_at, saved_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET student_number = excluded.student_number,
				ciphertext = excluded.ciphertext,
				nonce = excluded.nonce,
				expires_at = excluded.expires_at,
				saved_at = excluded.saved_at
	`
	_, err := r.db.ExecContext(ctx, query,
		singletonID, s.StudentNumber, s.Ciphertext, s.Nonce, s.ExpiresAt.Unix(), s.SavedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load reads the singleton row.
func (r *SQLiteRepository) Load(ctx context.Context) (models.StoredSession, error) {
	query := `SELECT student_number, ciphertext, nonce, expires_at, saved_at FROM sessions WHERE id = ?`

	var (
		s                  models.StoredSession
		expiresAt, savedAt int64
	)
	err := r.db.QueryRowContext(ctx, query, singletonID).
		Scan(&s.StudentNumber, &s.Ciphertext, &s.Nonce, &expiresAt, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, common.ErrorNotFound
	}
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("failed to load session: %w", err)
	}
	s.ExpiresAt = time.Unix(expiresAt, 0)
	s.SavedAt = time.Unix(savedAt, 0)
	return s, nil
}

// Delete removes the singleton row if present.
func (r *SQLiteRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
