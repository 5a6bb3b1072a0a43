package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/golf-tracker/app"
	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-tracker/integration_tests/containers"
)

// TestEnvironment holds a migrated Postgres database shared by a package's
// tests.
type TestEnvironment struct {
	Ctx         context.Context
	Cancel      context.CancelFunc
	PgContainer *postgres.PostgresContainer
	DSN         string
	DB          *bun.DB
}

// NewTestEnvironment starts Postgres and applies the schema migrations.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	db, err := scorecarddb.OpenDB(scorecarddb.DriverPostgres, dsn)
	if err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := app.RunMigrations(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, err
	}

	return &TestEnvironment{
		Ctx:         ctx,
		Cancel:      cancel,
		PgContainer: pgContainer,
		DSN:         dsn,
		DB:          db,
	}, nil
}

// Reset empties every application table.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	return TruncateTables(ctx, env.DB, "scorecards", "players")
}

// Cleanup closes the database and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		env.DB.Close()
	}
	if env.PgContainer != nil {
		env.PgContainer.Terminate(context.Background())
	}
	env.Cancel()
}
