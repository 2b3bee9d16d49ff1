package migration

import "embed"

// Scripts holds the versioned SQL migrations: goose files for postgres and
// golang-migrate up/down pairs for mysql.
//
//go:embed scripts/postgres/*.sql scripts/mysql/*.sql
var Scripts embed.FS

const (
	postgresScriptsDir = "scripts/postgres"
	mysqlScriptsDir    = "scripts/mysql"
)
