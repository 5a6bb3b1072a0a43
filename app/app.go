package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	scorecardmigrations "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories/migrations"
	golfmetrics "github.com/Black-And-White-Club/golf-tracker/app/shared/metrics"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.opentelemetry.io/otel"
)

// App holds the wired services for one process run.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Registry   *prometheus.Registry
	Repository scorecarddb.Repository
	Scorecards *scorecardservice.ScorecardService

	db *bun.DB
}

// NewApp initializes logging, metrics, storage and the scorecard service.
// Logs go to logOut.
func NewApp(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	logger, err := NewLogger(cfg.Logging, logOut)
	if err != nil {
		return nil, err
	}

	repo, db, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	metrics := golfmetrics.NewPrometheusMetrics(registry)
	tracer := otel.Tracer(cfg.Observability.ServiceName)

	svc := scorecardservice.NewScorecardService(repo, logger.With("module", "scorecard"), metrics, tracer, scorecardservice.RealClock{})

	logger.DebugContext(ctx, "Application initialized",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("data_dir", cfg.Storage.DataDir),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Registry:   registry,
		Repository: repo,
		Scorecards: svc,
		db:         db,
	}, nil
}

// NewLogger builds the process logger from config.
func NewLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (scorecarddb.Repository, *bun.DB, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return scorecarddb.NewMemoryRepository(), nil, nil
	case config.BackendFile:
		repo, err := scorecarddb.NewFileRepository(cfg.Storage.DataDir)
		return repo, nil, err
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		return openDatabase(ctx, scorecarddb.DriverSQLite, cfg.Storage.SQLitePath, logger)
	case config.BackendPostgres:
		return openDatabase(ctx, scorecarddb.DriverPostgres, cfg.Postgres.DSN, logger)
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func openDatabase(ctx context.Context, driver, dsn string, logger *slog.Logger) (scorecarddb.Repository, *bun.DB, error) {
	db, err := scorecarddb.OpenDB(driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if err := RunMigrations(ctx, db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}
	return scorecarddb.NewBunRepository(db), db, nil
}

// RunMigrations applies any pending schema migrations.
func RunMigrations(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	migrator := migrate.NewMigrator(db, scorecardmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	group, err := migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if !group.IsZero() {
		logger.InfoContext(ctx, "Applied migrations", slog.String("group", group.String()))
	}
	return nil
}

// Close flushes metrics to the configured textfile and releases storage.
func (a *App) Close() error {
	var errs []error
	if path := a.Config.Observability.MetricsTextfile; path != "" {
		if err := golfmetrics.WriteTextfile(path, a.Registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
