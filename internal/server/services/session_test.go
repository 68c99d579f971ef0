package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/logging"
	"github.com/akorlov/mapmark/internal/server/config"
	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

func newService(t *testing.T, mutate func(*config.Config)) *SessionService {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AccessTokenSecret = "test-access-secret"
	cfg.RefreshTokenSecret = "test-refresh-secret"
	if mutate != nil {
		mutate(cfg)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewSessionService(identities.NewMemoryRepository(), refreshtokens.NewMemoryRepository(), cfg, logger)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	first, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "Ada", first.Identity.Name)

	_, err = s.Register(ctx, "Imposter", "ada@example.com", "other")
	assert.ErrorIs(t, err, common.ErrorDuplicateEmail)

	// First identity must be left unmodified.
	res, err := s.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.Identity.Name)
}

func TestRegister_IssuesBothTokens(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)

	res, err := s.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.NotEqual(t, res.AccessToken, res.RefreshToken)
}

func TestLogin_AfterRegister(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	res, err := s.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, wrongPassword := s.Login(ctx, "ada@example.com", "wrong")
	_, unknownEmail := s.Login(ctx, "ghost@example.com", "secret1")

	assert.ErrorIs(t, wrongPassword, common.ErrorUnauthorized)
	assert.ErrorIs(t, unknownEmail, common.ErrorUnauthorized)
	assert.Equal(t, wrongPassword, unknownEmail, "caller must not learn which case occurred")
}

func TestLogin_PasswordHashNeverPlaintext(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)

	res, err := s.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", res.Identity.PasswordHash)
	assert.NotEmpty(t, res.Identity.PasswordHash)
}

func TestRefresh_Lifecycle(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	res, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	// Outstanding refresh token yields a fresh access token, repeatedly.
	access1, err := s.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access1)

	access2, err := s.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)

	// Revocation is terminal.
	require.NoError(t, s.Revoke(ctx, res.RefreshToken))
	_, err = s.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)

	// Revoking again is a no-op, and the token stays dead.
	require.NoError(t, s.Revoke(ctx, res.RefreshToken))
	_, err = s.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
}

func TestRefresh_NoToken(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	_, err := s.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNoToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	_, err := s.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	t.Parallel()

	s := newService(t, func(c *config.Config) {
		c.RefreshTokenValidityDuration = -1 * time.Second
	})
	ctx := context.Background()

	res, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.Refresh(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerifyAccessToken_Window(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	res, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	email, err := s.VerifyAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	// Refresh token is signed with the other secret and must not verify
	// as an access token.
	_, err = s.VerifyAccessToken(res.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	s := newService(t, func(c *config.Config) {
		c.AccessTokenValidityDuration = -1 * time.Second
	})
	ctx := context.Background()

	res, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(res.AccessToken)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	identity, err := s.UpdateProfile(ctx, "ada@example.com", "Ada Lovelace", "data:image/png;base64,abc")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", identity.Name)
	assert.Equal(t, "data:image/png;base64,abc", identity.ProfilePicture)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	t.Parallel()

	s := newService(t, nil)
	_, err := s.UpdateProfile(context.Background(), "ghost@example.com", "Ghost", "")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
