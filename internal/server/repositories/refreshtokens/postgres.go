package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akorlov/mapmark/internal/dbx"
)

// PostgresRepository implements the outstanding set over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts a new outstanding token for email with an expiry of now+validity.
func (r *PostgresRepository) Add(ctx context.Context, email, token string, validity time.Duration) error {
	query := `
		INSERT INTO refresh_tokens (email, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, email, token, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Contains reports whether token is in the outstanding set.
func (r *PostgresRepository) Contains(ctx context.Context, token string) (bool, error) {
	query := `
		SELECT 1
		FROM refresh_tokens
		WHERE token = $1
	`
	var one int
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// Remove deletes token from the outstanding set. Idempotent.
func (r *PostgresRepository) Remove(ctx context.Context, token string) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
