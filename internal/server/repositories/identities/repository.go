// Package identities provides the credential store: registered identities
// keyed by email. Two backends exist, an in-memory map (the default) and
// PostgreSQL, so the persistence mechanism can change without touching the
// session logic.
package identities

import (
	"context"

	"github.com/akorlov/mapmark/internal/server/models"
)

// Repository is the credential store contract.
//
// Create fails with common.ErrorDuplicateEmail if an identity with the same
// email (case-sensitive exact match) already exists. GetByEmail returns
// common.ErrorNotFound when no identity matches. UpdateProfile mutates name
// and profile picture only; email is immutable.
type Repository interface {
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error)
}
