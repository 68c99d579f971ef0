package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akorlov/mapmark/internal/common"
	"github.com/akorlov/mapmark/internal/dbx"
	"github.com/akorlov/mapmark/internal/server/models"
)

// PostgresRepository implements the credential store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a new identity. The unique index on email converts a
// concurrent duplicate registration into common.ErrorDuplicateEmail.
func (r *PostgresRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	query := `
		INSERT INTO identities (email, name, password_hash, profile_picture)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query,
		identity.Email, identity.Name, identity.PasswordHash, identity.ProfilePicture); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity.Clone(), nil
}

// GetByEmail returns the identity with the given email, or common.ErrorNotFound.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := `
		SELECT email, name, password_hash, profile_picture
		FROM identities
		WHERE email = $1
	`
	identity := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&identity.Email, &identity.Name, &identity.PasswordHash, &identity.ProfilePicture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity, nil
}

// UpdateProfile mutates name and profile picture on the matching identity.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, email, name, profilePicture string) (*models.Identity, error) {
	query := `
		UPDATE identities
		SET name = $2, profile_picture = $3
		WHERE email = $1
		RETURNING email, name, password_hash, profile_picture
	`
	identity := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, email, name, profilePicture).
		Scan(&identity.Email, &identity.Name, &identity.PasswordHash, &identity.ProfilePicture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity, nil
}
