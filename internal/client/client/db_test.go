package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInitDatabase_CreatesSessionSchema(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "iis.db"))

	var tables []string
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())

	assert.Subset(t, tables, []string{"goose_db_version", "metadata", "sessions"})

	version, err := goose.GetDBVersionContext(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestInitDatabase_OnlyOneRememberedSession(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "iis.db"))
	insert := `INSERT INTO sessions (id, student_number, ciphertext, nonce, expires_at, saved_at) VALUES (?, '42850012', x'01', x'02', 0, 0)`

	_, err := db.Exec(insert, 1)
	require.NoError(t, err)

	_, err = db.Exec(insert, 2)
	require.Error(t, err, "sessions is a singleton table")
}

func TestInitDatabase_ReopenKeepsRememberedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iis.db")

	first, err := InitDatabase(context.Background(), path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO metadata (key, value) VALUES ('pin_salt', x'0a0b')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openTestDB(t, path)
	var salt []byte
	require.NoError(t, second.QueryRow(`SELECT value FROM metadata WHERE key = 'pin_salt'`).Scan(&salt))
	assert.Equal(t, []byte{0x0a, 0x0b}, salt)
}

func TestInitDatabase_BadPath(t *testing.T) {
	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "iis.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
}
