package client

import (
	"context"
	"io"

	"github.com/akorlov/mapmark/internal/client/models"
)

// AuthResult bundles the identity and token pair the backend issues on
// register and login.
type AuthResult struct {
	User         *models.Identity
	AccessToken  string
	RefreshToken string
}

type Client interface {
	Close() error
	Register(ctx context.Context, name, email string, password []byte) (*AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error)
	Upload(ctx context.Context, fileName string, content io.Reader) (*models.StoredFile, error)
	SetAccessToken(token string)
}
