package scorecarddb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateSchema creates the players and scorecards tables and their indexes.
// It is idempotent.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().Model((*Player)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create players table: %w", err)
	}
	if _, err := db.NewCreateTable().Model((*Scorecard)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create scorecards table: %w", err)
	}
	if _, err := db.NewCreateIndex().
		Model((*Scorecard)(nil)).
		Index("idx_scorecards_player_id").
		Column("player_id").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create scorecards player index: %w", err)
	}
	return nil
}

// DropSchema drops everything CreateSchema creates.
func DropSchema(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewDropTable().Model((*Scorecard)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop scorecards table: %w", err)
	}
	if _, err := db.NewDropTable().Model((*Player)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop players table: %w", err)
	}
	return nil
}
