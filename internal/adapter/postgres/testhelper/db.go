// Package testhelper starts one disposable PostgreSQL container per test
// binary and seeds rows for repository tests.
package testhelper

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/agenda-backend/internal/adapter/postgres"
)

const (
	image    = "postgres:17-alpine"
	user     = "agenda"
	password = "agenda"
	database = "agenda_test"
)

// sharedDB starts the container and applies migrations on first use. The
// container is reaped by testcontainers when the process exits.
var sharedDB = sync.OnceValues(func() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       database,
			},
			// The entrypoint restarts postgres once after init.
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("postgres endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", user, password, endpoint, database)

	if _, err := postgres.MigrateUp(ctx, dsn, MigrationsPath()); err != nil {
		return "", err
	}
	return dsn, nil
})

// SetupTestDB returns a pool on the shared, migrated database. Tests are
// skipped under -short. The pool is closed on cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: container-backed test skipped in -short mode")
	}

	dsn, err := sharedDB()
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// DSN returns the shared database DSN, or "" if SetupTestDB has not run or
// failed.
func DSN() string {
	dsn, err := sharedDB()
	if err != nil {
		return ""
	}
	return dsn
}

// MigrationsPath is the absolute path of the repository's migrations/.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}
