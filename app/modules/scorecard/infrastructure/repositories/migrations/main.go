package scorecardmigrations

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations holds the Go migrations registered by this package's init
// functions.
var Migrations = migrate.NewMigrations()
