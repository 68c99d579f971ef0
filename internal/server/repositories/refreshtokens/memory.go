package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/akorlov/mapmark/internal/server/models"
)

// MemoryRepository keeps the outstanding set in a map keyed by the token
// string. Membership alone decides eligibility; expiry is enforced by token
// verification, not by the set.
type MemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]*models.RefreshToken
}

// NewMemoryRepository constructs an empty in-memory outstanding set.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]*models.RefreshToken)}
}

// Add records a freshly issued token for email.
func (r *MemoryRepository) Add(ctx context.Context, email, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.tokens[token] = &models.RefreshToken{
		Email:     email,
		Token:     token,
		ExpiresAt: now.Add(validity),
		CreatedAt: now,
	}
	return nil
}

// Contains reports whether token is in the outstanding set.
func (r *MemoryRepository) Contains(ctx context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tokens[token]
	return ok, nil
}

// Remove revokes token. Idempotent.
func (r *MemoryRepository) Remove(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}
