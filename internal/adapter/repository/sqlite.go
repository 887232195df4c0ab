package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a SQLite database file and creates the tables if needed.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time keeps sqlite from returning SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			github_url TEXT NOT NULL DEFAULT '',
			linkedin_url TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL,
			degree TEXT NOT NULL,
			university TEXT NOT NULL,
			projects TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL,
			certifications TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	return nil
}

type SQLiteProfilesRepo struct {
	db *sql.DB
}

func NewSQLiteProfilesRepo(db *sql.DB) *SQLiteProfilesRepo {
	return &SQLiteProfilesRepo{db: db}
}

func (r *SQLiteProfilesRepo) Create(ctx context.Context, p *domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO profiles (`+profileColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID.String(), p.Name, p.Email, p.Phone, p.GithubURL, p.LinkedinURL, p.Summary,
		p.Degree, p.University, p.Projects, p.Skills, p.Certifications, p.CreatedAt.UTC())
	return err
}

func (r *SQLiteProfilesRepo) Fetch(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	var (
		p       domain.Profile
		rawID   string
		created time.Time
	)
	err := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id.String()).Scan(
		&rawID, &p.Name, &p.Email, &p.Phone, &p.GithubURL, &p.LinkedinURL, &p.Summary,
		&p.Degree, &p.University, &p.Projects, &p.Skills, &p.Certifications, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	if p.ID, err = uuid.Parse(rawID); err != nil {
		return domain.Profile{}, fmt.Errorf("parse profile id: %w", err)
	}
	p.CreatedAt = created.UTC()
	return p, nil
}

type SQLiteUsersRepo struct {
	db *sql.DB
}

func NewSQLiteUsersRepo(db *sql.DB) *SQLiteUsersRepo {
	return &SQLiteUsersRepo{db: db}
}

func (r *SQLiteUsersRepo) Create(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, email, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID.String(), strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt.UTC())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *SQLiteUsersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var (
		u       domain.User
		rawID   string
		created time.Time
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`,
		strings.ToLower(email)).Scan(&rawID, &u.Email, &u.PasswordHash, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	if u.ID, err = uuid.Parse(rawID); err != nil {
		return domain.User{}, fmt.Errorf("parse user id: %w", err)
	}
	u.CreatedAt = created.UTC()
	return u, nil
}
