// Package db assembles the server's stores behind a RepositoryManager so the
// persistence mechanism (in-memory, PostgreSQL, Redis for the outstanding
// set) is swappable without touching the session logic.
package db

import (
	"context"
	"database/sql"

	"github.com/akorlov/mapmark/internal/server/config"
	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

// RepositoryManager hands out the credential store and the outstanding
// refresh-token set. Conn returns nil for backends without a SQL database.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Identities() identities.Repository
	RefreshTokens() refreshtokens.Repository
}

// NewRepositoryManager builds the manager selected by cfg.StoreBackend.
// When cfg.RedisAddr is set, the outstanding set moves to Redis regardless
// of the main store backend.
func NewRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	var m RepositoryManager
	var err error

	switch cfg.StoreBackend {
	case config.StorePostgres:
		m, err = NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	default:
		m = NewInMemoryRepositoryManager()
	}
	if err != nil {
		return nil, err
	}

	if cfg.RedisAddr != "" {
		m = withRedisRefreshTokens(m, cfg.RedisAddr, cfg.RedisPassword)
	}
	return m, nil
}
