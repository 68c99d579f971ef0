// Package services contains application services for the mapmark client.
// This file defines the session service: register, login, background access
// token renewal, and housekeeping of the locally persisted session.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/akorlov/mapmark/internal/client/client"
	"github.com/akorlov/mapmark/internal/client/models"
	"github.com/akorlov/mapmark/internal/client/repositories/metadata"
	"github.com/akorlov/mapmark/internal/dbx"
)

// Local state keys. They mirror the browser client's storage so a reader of
// either side finds the same names.
const (
	keyUser         = "user"
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
)

// SessionService manages the client session lifecycle.
//
// Contract:
//   - Register / Login: authenticate against the server and persist the
//     session locally.
//   - Restore: load a previously persisted session without contacting the
//     server.
//   - Renew: exchange the refresh token for a fresh access token.
//   - StartRenewalWatcher: renew in the background on a fixed interval.
//   - Logout: best-effort revoke on the server, then clear local state.
//
// All methods must honor context cancellation/timeouts.
type SessionService interface {
	Register(ctx context.Context, name, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Restore(ctx context.Context) error
	Renew(ctx context.Context) error
	StartRenewalWatcher(ctx context.Context, interval time.Duration, onExpired func())
	UpdateProfile(ctx context.Context, name, profilePicture string) error
	Upload(ctx context.Context, fileName string, content io.Reader) (*models.StoredFile, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.Identity
	IsLoggedIn() bool
	Close(ctx context.Context) error
}

// sessionService is the concrete SessionService backed by a remote Client
// and a local SQL database for the persisted session.
type sessionService struct {
	client client.Client
	db     *sql.DB

	mu           sync.RWMutex
	identity     *models.Identity
	accessToken  string
	refreshToken string
}

// NewSessionService constructs a SessionService bound to the given API
// client and DB.
func NewSessionService(client client.Client, db *sql.DB) SessionService {
	return &sessionService{client: client, db: db}
}

func (s *sessionService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Register creates a new account on the server and adopts the issued
// session.
func (s *sessionService) Register(ctx context.Context, name, email string, password []byte) error {
	res, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return s.adoptSession(ctx, res)
}

// Login authenticates against the server and adopts the issued session.
func (s *sessionService) Login(ctx context.Context, email string, password []byte) error {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adoptSession(ctx, res)
}

// adoptSession stores the identity and token pair in memory and persists
// them locally so the session survives a restart.
func (s *sessionService) adoptSession(ctx context.Context, res *client.AuthResult) error {
	s.mu.Lock()
	s.identity = res.User
	s.accessToken = res.AccessToken
	s.refreshToken = res.RefreshToken
	s.mu.Unlock()

	s.client.SetAccessToken(res.AccessToken)

	return s.saveSession(ctx, res.User, res.AccessToken, res.RefreshToken)
}

// saveSession persists the session under the fixed local keys in a single
// transaction.
func (s *sessionService) saveSession(ctx context.Context, identity *models.Identity, accessToken, refreshToken string) error {
	userBlob, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := metadata.NewSQLiteRepository(tx)
		if err := metadataRepo.Set(ctx, keyUser, userBlob); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, keyAccessToken, []byte(accessToken)); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, keyRefreshToken, []byte(refreshToken)); err != nil {
			return err
		}
		return nil
	})
}

// ErrNoSavedSession is returned by Restore when no session was persisted.
var ErrNoSavedSession = errors.New("no saved session")

// Restore loads a previously persisted session from the local store. The
// server is not contacted; stale tokens surface on the next renewal.
func (s *sessionService) Restore(ctx context.Context) error {
	metadataRepo := s.getMetadataRepo()

	userBlob, err := metadataRepo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if userBlob == nil {
		return ErrNoSavedSession
	}

	var identity models.Identity
	if err := json.Unmarshal(userBlob, &identity); err != nil {
		return err
	}

	accessToken, err := metadataRepo.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	refreshToken, err := metadataRepo.Get(ctx, keyRefreshToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &identity
	s.accessToken = string(accessToken)
	s.refreshToken = string(refreshToken)
	s.mu.Unlock()

	s.client.SetAccessToken(string(accessToken))
	return nil
}

// Renew exchanges the refresh token for a fresh access token and persists
// it. The refresh token itself is not rotated.
func (s *sessionService) Renew(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	identity := s.identity
	s.mu.RUnlock()

	if refreshToken == "" {
		return client.ErrUnauthorized
	}

	accessToken, err := s.client.Refresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = accessToken
	s.mu.Unlock()

	s.client.SetAccessToken(accessToken)

	return s.saveSession(ctx, identity, accessToken, refreshToken)
}

// StartRenewalWatcher renews the access token every interval until ctx is
// cancelled. A failed renewal is retried once; if the retry also fails the
// local session is torn down and onExpired is invoked.
func (s *sessionService) StartRenewalWatcher(ctx context.Context, interval time.Duration, onExpired func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := s.Renew(ctx)
			if err != nil {
				err = s.Renew(ctx)
			}
			if err != nil {
				_ = s.clearLocalSession(ctx)
				if onExpired != nil {
					onExpired()
				}
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// UpdateProfile changes the signed-in user's name and profile picture and
// refreshes the persisted identity.
func (s *sessionService) UpdateProfile(ctx context.Context, name, profilePicture string) error {
	s.mu.RLock()
	identity := s.identity
	s.mu.RUnlock()

	if identity == nil {
		return client.ErrUnauthorized
	}

	updated, err := s.client.UpdateProfile(ctx, identity.Email, name, profilePicture)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = updated
	accessToken := s.accessToken
	refreshToken := s.refreshToken
	s.mu.Unlock()

	return s.saveSession(ctx, updated, accessToken, refreshToken)
}

// Upload sends a file to the server's upload endpoint.
func (s *sessionService) Upload(ctx context.Context, fileName string, content io.Reader) (*models.StoredFile, error) {
	return s.client.Upload(ctx, fileName, content)
}

// Logout revokes the refresh token on the server (best effort) and clears
// the local session.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken != "" {
		// The local session goes away even when the server is unreachable.
		_ = s.client.Revoke(ctx, refreshToken)
	}

	return s.clearLocalSession(ctx)
}

func (s *sessionService) clearLocalSession(ctx context.Context) error {
	s.mu.Lock()
	s.identity = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()

	s.client.SetAccessToken("")

	return s.getMetadataRepo().Clear(ctx)
}

// CurrentUser returns the signed-in identity, or nil.
func (s *sessionService) CurrentUser() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *sessionService) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}

// Close releases resources held by the underlying client.
func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}
