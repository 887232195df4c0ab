package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgconn"
)

// Execer runs a statement; *pgxpool.Pool satisfies it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// RunMigrations creates the tables the service needs on startup. Every step
// is idempotent.
func RunMigrations(ctx context.Context, pool Execer) error {
	slog.Info("Starting database migrations")

	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

var migrations = []Migration{
	{
		Name: "create_users",
		SQL: `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name: "create_profiles",
		SQL: `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			email VARCHAR(200) NOT NULL,
			phone VARCHAR(200) NOT NULL,
			github_url VARCHAR(500) NOT NULL DEFAULT '',
			linkedin_url VARCHAR(500) NOT NULL DEFAULT '',
			summary TEXT NOT NULL,
			degree VARCHAR(200) NOT NULL,
			university VARCHAR(200) NOT NULL,
			projects TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL,
			certifications TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name: "index_profiles_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS profiles_created_at_idx ON profiles (created_at);`,
	},
}
