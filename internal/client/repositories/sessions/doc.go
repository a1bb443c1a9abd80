// Package sessions persists the remembered session in the local database.
//
// # Data Model
//
// The sessions table holds at most one row. The token pair is sealed by the
// caller (see internal/cryptox) before it reaches the repository, so only the
// student number and the expiry instant are stored in the clear.
//
// Key Types
//
//   - type Repository        - interface used by services.SessionService
//   - type SQLiteRepository  - SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := sessions.NewSQLiteRepository(db)
//	_ = repo.Save(ctx, stored)
//	s, err := repo.Load(ctx) // common.ErrorNotFound when nothing was saved
//	_ = repo.Delete(ctx)
package sessions
