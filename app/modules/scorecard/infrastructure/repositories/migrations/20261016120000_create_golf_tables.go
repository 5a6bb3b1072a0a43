package scorecardmigrations

import (
	"context"

	scorecarddb "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Migrations run inside every sqlite/postgres startup, so they stay silent;
// callers report progress through their own logger.
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return scorecarddb.CreateSchema(ctx, tx)
		})
	}, func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return scorecarddb.DropSchema(ctx, tx)
		})
	})
}
