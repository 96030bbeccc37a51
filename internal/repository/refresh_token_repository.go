package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RefreshToken is the stored record for an issued refresh token. Only the
// SHA-256 hash of the raw token is persisted.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Revoked reports whether the token has been invalidated.
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}

// RefreshTokenRepository manages refresh token persistence.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type refreshTokenRepository struct {
	pool *pgxpool.Pool
}

// NewRefreshTokenRepository constructs repository.
func NewRefreshTokenRepository(pool *pgxpool.Pool) RefreshTokenRepository {
	return &refreshTokenRepository{pool: pool}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)
}

func (r *refreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	const query = `
        SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
        FROM refresh_tokens WHERE token_hash=$1`
	var token RefreshToken
	if err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.ExpiresAt,
		&token.RevokedAt,
		&token.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	const query = `
        UPDATE refresh_tokens SET revoked_at=NOW()
        WHERE token_hash=$1 AND revoked_at IS NULL`
	_, err := r.pool.Exec(ctx, query, tokenHash)
	return err
}

func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	const query = `
        UPDATE refresh_tokens SET revoked_at=NOW()
        WHERE user_id=$1 AND revoked_at IS NULL`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
