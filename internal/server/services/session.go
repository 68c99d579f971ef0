// Package services contains server-side business logic. This file implements
// SessionService, which handles registration, login, profile updates, and
// issuing/refreshing/revoking the signed session tokens.
package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/logging"
	"github.com/akorlov/mapmark/internal/server/auth"
	"github.com/akorlov/mapmark/internal/server/config"
	"github.com/akorlov/mapmark/internal/server/models"
	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

// bcryptCost matches the fixed cost factor of the credential store contract.
const bcryptCost = 10

// AuthResult bundles the identity with a freshly issued token pair.
type AuthResult struct {
	Identity     *models.Identity
	AccessToken  string
	RefreshToken string
}

// SessionService provides the session lifecycle:
//   - Register: create an identity and log it in (atomic from the caller's view)
//   - Login: verify credentials and mint both tokens
//   - Refresh: re-issue an access token against an outstanding refresh token
//   - Revoke: drop a refresh token from the outstanding set
//   - UpdateProfile: mutate name/profile picture on an identity
type SessionService struct {
	identities                   identities.Repository
	refreshTokens                refreshtokens.Repository
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	logger                       logging.Logger
}

// NewSessionService constructs a SessionService using the stores and server config.
func NewSessionService(ids identities.Repository, tokens refreshtokens.Repository, cfg *config.Config, logger logging.Logger) *SessionService {
	return &SessionService{
		identities:                   ids,
		refreshTokens:                tokens,
		accessSecret:                 []byte(cfg.AccessTokenSecret),
		refreshSecret:                []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		logger:                       logger,
	}
}

// Register creates a new identity with a bcrypt-hashed password and
// immediately issues a token pair. Fails with common.ErrorDuplicateEmail if
// the email is taken; the existing identity is left unmodified.
func (s *SessionService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	identity, err := s.identities.Create(ctx, &models.Identity{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, identity)
}

// Login verifies the password against the stored hash and, on success,
// returns a new token pair. An unknown email and a wrong password both yield
// common.ErrorUnauthorized; the distinction is logged server-side only.
func (s *SessionService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Info(ctx, "login failed: unknown email", "email", email)
		return nil, common.ErrorUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		s.logger.Info(ctx, "login failed: password mismatch", "email", email)
		return nil, common.ErrorUnauthorized
	}

	return s.issueTokenPair(ctx, identity)
}

// Refresh validates a presented refresh token and re-issues an access token
// bound to the email recovered from its claims. The refresh token itself is
// not rotated. Outcomes: common.ErrNoToken when no token is presented,
// common.ErrTokenRevoked when the token is not in the outstanding set,
// common.ErrTokenExpired / common.ErrInvalidToken from verification.
func (s *SessionService) Refresh(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrNoToken
	}

	// Membership first: a revoked token fails here even if still verifiable.
	outstanding, err := s.refreshTokens.Contains(ctx, token)
	if err != nil {
		return "", fmt.Errorf("error checking outstanding set: %w", err)
	}
	if !outstanding {
		return "", common.ErrTokenRevoked
	}

	email, err := auth.GetEmailFromToken(token, s.refreshSecret)
	if err != nil {
		return "", err
	}

	accessToken, err := auth.GenerateToken(email, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return accessToken, nil
}

// Revoke removes a refresh token from the outstanding set. Idempotent:
// revoking an absent or already-revoked token is a no-op.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.refreshTokens.Remove(ctx, token)
}

// UpdateProfile mutates name and profile picture on the identity with the
// given email. Fails with common.ErrorNotFound for an unknown email.
func (s *SessionService) UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error) {
	return s.identities.UpdateProfile(ctx, email, name, profilePicture)
}

// VerifyAccessToken checks an access token and returns the email it asserts.
func (s *SessionService) VerifyAccessToken(token string) (string, error) {
	if token == "" {
		return "", common.ErrNoToken
	}
	return auth.GetEmailFromToken(token, s.accessSecret)
}

func (s *SessionService) issueTokenPair(ctx context.Context, identity *models.Identity) (*AuthResult, error) {
	accessToken, err := auth.GenerateToken(identity.Email, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := auth.GenerateToken(identity.Email, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// Issuing a refresh token adds it to the outstanding set as a side effect.
	if err := s.refreshTokens.Add(ctx, identity.Email, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
