package repository

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// querier is the part of *pgxpool.Pool the repos use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const profileColumns = `id, name, email, phone, github_url, linkedin_url, summary, degree, university, projects, skills, certifications, created_at`

// ProfilesRepo stores profiles in Postgres.
type ProfilesRepo struct {
	pool querier
}

func NewProfilesRepo(pool *pgxpool.Pool) *ProfilesRepo {
	return &ProfilesRepo{pool: pool}
}

func (r *ProfilesRepo) Create(ctx context.Context, p *domain.Profile) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.Email, p.Phone, p.GithubURL, p.LinkedinURL, p.Summary,
		p.Degree, p.University, p.Projects, p.Skills, p.Certifications, p.CreatedAt)
	return err
}

func (r *ProfilesRepo) Fetch(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.GithubURL, &p.LinkedinURL, &p.Summary,
		&p.Degree, &p.University, &p.Projects, &p.Skills, &p.Certifications, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
