package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/akorlov/mapmark/internal/server/migrations"
	"github.com/akorlov/mapmark/internal/server/repositories/identities"
	"github.com/akorlov/mapmark/internal/server/repositories/refreshtokens"
)

// PostgresRepositoryManager backs both stores with PostgreSQL via the pgx
// stdlib driver.
type PostgresRepositoryManager struct {
	db            *sql.DB
	identities    identities.Repository
	refreshTokens refreshtokens.Repository
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:            db,
		identities:    identities.NewPostgresRepository(db),
		refreshTokens: refreshtokens.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func (m *PostgresRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}
