// Package vault holds the tokens of the single active session.
//
// Token material is kept in byte slices owned by the Vault and overwritten
// with zeros whenever it is replaced, cleared or the Vault is closed. Reads
// take a read lock and see either the previous or the next session, never a
// mix of both.
package vault

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/common"
)

// DefaultExpiresIn is used when StoreTokens is given a non-positive lifetime.
const DefaultExpiresIn int64 = 3600

// DefaultTokenType is recorded by StoreTokens.
const DefaultTokenType = "Bearer"

// Vault is safe for concurrent use.
type Vault struct {
	mu sync.RWMutex

	access  []byte
	refresh []byte

	tokenType string
	issuedAt  time.Time
	expiresIn int64
	expiresAt time.Time

	now func() time.Time
}

// New returns an empty vault. A nil clock means time.Now.
func New(now func() time.Time) *Vault {
	if now == nil {
		now = time.Now
	}
	return &Vault{now: now}
}

// StoreTokens replaces the current session. The expiry is computed from the
// vault clock as now + expiresIn seconds.
func (v *Vault) StoreTokens(access, refresh string, expiresIn int64) {
	v.Store(models.Session{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        DefaultTokenType,
		ExpiresInSeconds: expiresIn,
	})
}

// Store replaces the current session with s. IssuedAt is taken from the vault
// clock when s does not carry one.
func (v *Vault) Store(s models.Session) {
	issued := s.IssuedAt
	if issued.IsZero() {
		issued = v.now()
	}
	expiresIn := s.ExpiresInSeconds
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.wipeLocked()
	v.access = []byte(s.AccessToken)
	if s.RefreshToken != "" {
		v.refresh = []byte(s.RefreshToken)
	}
	v.tokenType = tokenType
	v.issuedAt = issued
	v.expiresIn = expiresIn
	v.expiresAt = issued.Add(time.Duration(expiresIn) * time.Second)
}

// AccessToken returns the access token only while it is still valid.
func (v *Vault) AccessToken() (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.validLocked() {
		return "", false
	}
	return string(v.access), true
}

// RefreshToken returns the stored refresh token, if any, regardless of the
// access token's expiry.
func (v *Vault) RefreshToken() (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if len(v.refresh) == 0 {
		return "", false
	}
	return string(v.refresh), true
}

// HasValidTokens reports whether an access token is stored and not expired.
func (v *Vault) HasValidTokens() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.validLocked()
}

// IsTokenExpired reports whether the expiry instant has passed. An empty
// vault counts as expired.
func (v *Vault) IsTokenExpired() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.now().Before(v.expiresAt)
}

// TimeUntilExpiration returns whole seconds left, never negative.
func (v *Vault) TimeUntilExpiration() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	left := v.expiresAt.Sub(v.now())
	if left <= 0 {
		return 0
	}
	return int64(left / time.Second)
}

// Session returns the metadata of the current session with token fields left
// empty. ok is false when nothing is stored.
func (v *Vault) Session() (models.Session, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if len(v.access) == 0 {
		return models.Session{}, false
	}
	return models.Session{
		TokenType:        v.tokenType,
		IssuedAt:         v.issuedAt,
		ExpiresInSeconds: v.expiresIn,
	}, true
}

// ClearTokens overwrites the stored tokens and resets expiry state.
func (v *Vault) ClearTokens() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.wipeLocked()
}

// ClearIfAccess clears the vault only when the stored access token equals
// access. It reports whether anything was cleared, so a caller holding a
// stale token cannot drop a session stored after it read that token.
func (v *Vault) ClearIfAccess(access string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.access) == 0 || subtle.ConstantTimeCompare(v.access, []byte(access)) == 0 {
		return false
	}
	v.wipeLocked()
	return true
}

// ClearIfExpired clears a stored but expired session and reports whether it
// did. A live session is left untouched.
func (v *Vault) ClearIfExpired() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.access) == 0 || v.validLocked() {
		return false
	}
	v.wipeLocked()
	return true
}

// Close clears the vault. It is safe to call more than once.
func (v *Vault) Close() error {
	v.ClearTokens()
	return nil
}

func (v *Vault) validLocked() bool {
	return len(v.access) > 0 && v.now().Before(v.expiresAt)
}

func (v *Vault) wipeLocked() {
	common.WipeByteArray(v.access)
	common.WipeByteArray(v.refresh)
	v.access = nil
	v.refresh = nil
	v.tokenType = ""
	v.issuedAt = time.Time{}
	v.expiresIn = 0
	v.expiresAt = time.Time{}
}
