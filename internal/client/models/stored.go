package models

import "time"

// StoredSession is a remembered session as kept in the local database. The
// tokens are inside Ciphertext only; nothing else is secret.
type StoredSession struct {
	StudentNumber string
	Ciphertext    []byte
	Nonce         []byte
	ExpiresAt     time.Time
	SavedAt       time.Time
}
