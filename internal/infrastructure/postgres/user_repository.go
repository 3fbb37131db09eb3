package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yetkin-kariyer/botfleet/internal/domain/user"
)

// UserRepository implements user.Repository.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users
		(user_id, username, password_hash, role, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, u.UserID, u.Username, u.PasswordHash, u.Role, u.Status, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, username, password_hash, role, status, created_at, updated_at
		FROM users WHERE user_id=$1
	`, userID)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, username, password_hash, role, status, created_at, updated_at
		FROM users WHERE username=$1
	`, username)
	return scanUser(row)
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	row := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.UserID, &u.Username, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
