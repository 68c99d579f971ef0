// Package refreshtokens tracks the outstanding set: refresh tokens that are
// currently eligible for use. Presence in the set is the only revocation
// mechanism in the system. Backends: in-memory (default), PostgreSQL, Redis.
package refreshtokens

import (
	"context"
	"time"
)

// Repository is the outstanding-set contract.
//
// Add records a freshly issued token. Contains reports membership. Remove
// revokes a token and is idempotent: removing an absent or already-removed
// token is a no-op, not an error. Once removed, a token can never re-enter
// the set.
type Repository interface {
	Add(ctx context.Context, email, token string, validity time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}
