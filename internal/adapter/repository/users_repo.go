package repository

import (
	"context"
	"errors"
	"strings"

	"resume-builder/internal/domain"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// UsersRepo stores accounts in Postgres.
type UsersRepo struct {
	pool querier
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

func (r *UsersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, email, password_hash, created_at) VALUES ($1,$2,$3,$4)`,
		u.ID, strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		strings.ToLower(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
