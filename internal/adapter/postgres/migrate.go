package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// MigrationStatus is one line of `agendactl migrate status`.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// withProvider opens a database/sql handle (goose requires *sql.DB) and a
// goose provider over the migrations directory.
func withProvider(ctx context.Context, dsn, dir string, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	// goose.NewProvider with os.DirFS handles $$-delimited bodies correctly.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	return fn(provider)
}

// MigrateUp applies all pending migrations and returns the versions applied.
func MigrateUp(ctx context.Context, dsn, dir string) ([]int64, error) {
	var applied []int64
	err := withProvider(ctx, dsn, dir, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			applied = append(applied, r.Source.Version)
		}
		return nil
	})
	return applied, err
}

// MigrateStatus reports every known migration and whether it is applied.
func MigrateStatus(ctx context.Context, dsn, dir string) ([]MigrationStatus, error) {
	var out []MigrationStatus
	err := withProvider(ctx, dsn, dir, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			out = append(out, MigrationStatus{
				Version: s.Source.Version,
				Source:  s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return out, err
}
