package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Source serves the schema and seed migrations compiled into the binary.
func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: sqlFiles,
		Root:       "sql",
	}
}

// Run applies pending migrations in the given direction and returns how
// many were applied.
func Run(db *sql.DB, log *zap.Logger, direction migrate.MigrationDirection) (int, error) {
	n, err := migrate.Exec(db, "postgres", Source(), direction)
	if err != nil {
		log.Error("migration.Run failed", zap.Error(err))
		return 0, err
	}

	log.Info("migration.Run succeeded", zap.Int("applied", n))
	return n, nil
}
