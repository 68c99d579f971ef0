package db

import (
	"context"
	"database/sql"

	"github.com/go-redis/redis/v8"

	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

// redisOverlayManager delegates to an inner manager but serves the
// outstanding refresh-token set from Redis.
type redisOverlayManager struct {
	inner         RepositoryManager
	refreshTokens refreshtokens.Repository
}

func withRedisRefreshTokens(inner RepositoryManager, addr, password string) RepositoryManager {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &redisOverlayManager{
		inner:         inner,
		refreshTokens: refreshtokens.NewRedisRepository(client),
	}
}

func (m *redisOverlayManager) Conn() *sql.DB { return m.inner.Conn() }

func (m *redisOverlayManager) RunMigrations(ctx context.Context) error {
	return m.inner.RunMigrations(ctx)
}

func (m *redisOverlayManager) Identities() identities.Repository {
	return m.inner.Identities()
}

func (m *redisOverlayManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}
