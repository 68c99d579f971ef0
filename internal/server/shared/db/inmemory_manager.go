package db

import (
	"context"
	"database/sql"

	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

// InMemoryRepositoryManager backs both stores with process-local maps.
// This is the reference configuration: no persistence, single process.
type InMemoryRepositoryManager struct {
	identities    identities.Repository
	refreshTokens refreshtokens.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		identities:    identities.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}
