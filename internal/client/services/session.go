package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/iisclient/internal/client/client"
	"github.com/dmitrijs2005/iisclient/internal/client/models"
	"github.com/dmitrijs2005/iisclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/iisclient/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/iisclient/internal/common"
	"github.com/dmitrijs2005/iisclient/internal/cryptox"
	"github.com/dmitrijs2005/iisclient/internal/dbx"
)

const saltSize = 16

// SessionService remembers the active session between CLI runs.
//
// Contract:
//   - Remember: seal the client's current tokens and session cookies under a
//     key derived from pin and store them with their expiry. Requires a live
//     session.
//   - Restore: check pin, unseal and install the tokens and cookies into the
//     client.
//     Returns the student number the session belongs to.
//   - Forget: remove the remembered session and its PIN material.
//   - Saved: report whether a remembered session exists and when it expires.
//
// pin slices are wiped before each method returns.
type SessionService interface {
	Remember(ctx context.Context, studentNumber string, pin []byte) error
	Restore(ctx context.Context, pin []byte) (string, error)
	Forget(ctx context.Context) error
	Saved(ctx context.Context) (models.StoredSession, bool, error)
}

// sealedTokens is the plaintext inside StoredSession.Ciphertext. Cookies
// hold the upstream's server-side session; the access token alone is only a
// local marker.
type sealedTokens struct {
	Access  string         `json:"access"`
	Refresh string         `json:"refresh,omitempty"`
	Cookies []sealedCookie `json:"cookies,omitempty"`
}

type sealedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sessionService struct {
	client client.Client
	db     *sql.DB
	now    func() time.Time
}

// NewSessionService constructs a SessionService. A nil now means time.Now.
func NewSessionService(c client.Client, db *sql.DB, now func() time.Time) SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionService{client: c, db: db, now: now}
}

func (s *sessionService) Remember(ctx context.Context, studentNumber string, pin []byte) error {
	defer common.WipeByteArray(pin)

	if len(pin) == 0 {
		return common.ErrEmptyCredential
	}
	access, ok := s.client.AccessToken()
	if !ok {
		return common.ErrorUnauthorized
	}
	refresh, _ := s.client.RefreshToken()
	meta, _ := s.client.Session()

	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveKey(pin, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	sealed := sealedTokens{Access: access, Refresh: refresh}
	for _, c := range s.client.SessionCookies() {
		sealed.Cookies = append(sealed.Cookies, sealedCookie{Name: c.Name, Value: c.Value})
	}

	ciphertext, nonce, err := cryptox.Seal(sealed, key)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	stored := models.StoredSession{
		StudentNumber: studentNumber,
		Ciphertext:    ciphertext,
		Nonce:         nonce,
		ExpiresAt:     meta.ExpiresAt(),
		SavedAt:       s.now(),
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := metadata.NewSQLiteRepository(tx)
		if err := metadataRepo.Set(ctx, metadata.KeySalt, salt); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, metadata.KeyVerifier, verifier); err != nil {
			return err
		}
		return sessions.NewSQLiteRepository(tx).Save(ctx, stored)
	})
}

func (s *sessionService) Restore(ctx context.Context, pin []byte) (string, error) {
	defer common.WipeByteArray(pin)

	stored, err := sessions.NewSQLiteRepository(s.db).Load(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrNoSavedSession
	}
	if err != nil {
		return "", err
	}

	expiresIn := int64(stored.ExpiresAt.Sub(s.now()) / time.Second)
	if expiresIn <= 0 {
		if err := s.Forget(ctx); err != nil {
			return "", err
		}
		return "", common.ErrSessionExpired
	}

	metadataRepo := metadata.NewSQLiteRepository(s.db)
	salt, err := metadataRepo.Get(ctx, metadata.KeySalt)
	if err != nil {
		return "", missingAsNoSession(err)
	}
	savedVerifier, err := metadataRepo.Get(ctx, metadata.KeyVerifier)
	if err != nil {
		return "", missingAsNoSession(err)
	}

	key := cryptox.DeriveKey(pin, salt)
	defer common.WipeByteArray(key)
	if subtle.ConstantTimeCompare(savedVerifier, cryptox.MakeVerifier(key)) == 0 {
		return "", common.ErrInvalidPIN
	}

	var tokens sealedTokens
	if err := cryptox.Open(stored.Ciphertext, stored.Nonce, key, &tokens); err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	cookies := make([]*http.Cookie, 0, len(tokens.Cookies))
	for _, c := range tokens.Cookies {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	s.client.SetSessionCookies(cookies)
	if err := s.client.SetTokens(tokens.Access, tokens.Refresh, expiresIn); err != nil {
		return "", fmt.Errorf("install session: %w", err)
	}
	return stored.StudentNumber, nil
}

func (s *sessionService) Forget(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := sessions.NewSQLiteRepository(tx).Delete(ctx); err != nil {
			return err
		}
		metadataRepo := metadata.NewSQLiteRepository(tx)
		if err := metadataRepo.Delete(ctx, metadata.KeySalt); err != nil {
			return err
		}
		return metadataRepo.Delete(ctx, metadata.KeyVerifier)
	})
}

func (s *sessionService) Saved(ctx context.Context) (models.StoredSession, bool, error) {
	stored, err := sessions.NewSQLiteRepository(s.db).Load(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return models.StoredSession{}, false, nil
	}
	if err != nil {
		return models.StoredSession{}, false, err
	}
	stored.Ciphertext = nil
	stored.Nonce = nil
	return stored, true, nil
}

func missingAsNoSession(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrNoSavedSession
	}
	return err
}
