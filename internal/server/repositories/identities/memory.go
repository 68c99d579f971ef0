package identities

import (
	"context"
	"sync"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/server/models"
)

// MemoryRepository keeps identities in a map keyed by email. All methods are
// safe for concurrent use; the mutex serializes writers so two concurrent
// registrations with the same email cannot both succeed.
type MemoryRepository struct {
	mu         sync.RWMutex
	identities map[string]*models.Identity
}

// NewMemoryRepository constructs an empty in-memory credential store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{identities: make(map[string]*models.Identity)}
}

// Create appends a new identity. Fails with common.ErrorDuplicateEmail when
// the email is already registered.
func (r *MemoryRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.Email]; ok {
		return nil, common.ErrorDuplicateEmail
	}

	stored := identity.Clone()
	r.identities[identity.Email] = stored
	return stored.Clone(), nil
}

// GetByEmail returns a copy of the identity with the given email, or
// common.ErrorNotFound.
func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return identity.Clone(), nil
}

// UpdateProfile mutates name and profile picture on the matching identity.
func (r *MemoryRepository) UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.identities[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	identity.Name = name
	identity.ProfilePicture = profilePicture
	return identity.Clone(), nil
}
