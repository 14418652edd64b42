package history

import (
	"context"
	"database/sql"

	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/logger"
)

const (
	SchemaVersion = 1

	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS games (
	       id          TEXT PRIMARY KEY,
	       started_at  INTEGER NOT NULL,
	       secret      INTEGER NOT NULL,
	       min_value   INTEGER NOT NULL,
	       max_value   INTEGER NOT NULL,
	       attempts    INTEGER NOT NULL CHECK (attempts > 0),
	       rejected    INTEGER NOT NULL CHECK (rejected >= 0),
	       duration_ms INTEGER NOT NULL CHECK (duration_ms >= 0)
	   );
	   CREATE TABLE IF NOT EXISTS conversions (
	       id          TEXT PRIMARY KEY,
	       created_at  INTEGER NOT NULL,
	       input       TEXT NOT NULL,
	       value       REAL NOT NULL,
	       unit        TEXT NOT NULL CHECK (unit IN ('Celsius', 'Fahrenheit', 'Kelvin')),
	       celsius     REAL NOT NULL,
	       fahrenheit  REAL NOT NULL,
	       kelvin      REAL NOT NULL
	   );`

	insertGameSQL = `
    INSERT INTO games (
        id, started_at, secret, min_value, max_value,
        attempts, rejected, duration_ms
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	insertConversionSQL = `
    INSERT INTO conversions (
        id, created_at, input, value, unit,
        celsius, fahrenheit, kelvin
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	gameSummarySQL = `
    SELECT COUNT(*),
           COALESCE(MIN(attempts), 0),
           COALESCE(AVG(attempts), 0),
           COALESCE(MIN(duration_ms), 0)
    FROM games`

	conversionCountSQL = `SELECT COUNT(*) FROM conversions`
)

// InitSchema creates a new database schema with the current version
func InitSchema(ctx context.Context, db *sql.DB, log logger.Logger) error {
	errFactory := errors.New()

	log.Debug().Msg("Creating database...")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	// Track transaction state
	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				log.Debug().Err(err).Msg("Failed to rollback transaction")
			}
		}
	}()

	if _, err := tx.ExecContext(ctx, createTablesSQL); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Phase string
			Error string
		}{
			Phase: "create_tables",
			Error: err.Error(),
		})
	}

	if _, err := tx.ExecContext(ctx, `
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
    `, SchemaVersion); err != nil {
		return errFactory.WithData(ErrSchemaInitFailed, struct {
			Phase string
			Error string
		}{
			Phase: "record_version",
			Error: err.Error(),
		})
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}
	committed = true

	log.Info().
		Int("version", SchemaVersion).
		Msg("Schema initialized successfully")

	return nil
}

// GetSchemaVersion returns the current schema version, 0 for an empty database
func GetSchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	errFactory := errors.New()

	exists, err := TableExists(ctx, db, "schema_versions")
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var version int
	err = db.QueryRowContext(ctx, `
        SELECT version
        FROM schema_versions
        ORDER BY version DESC
        LIMIT 1
    `).Scan(&version)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errFactory.WithData(ErrSchemaValidationFailed, struct {
			Phase string
			Error string
		}{
			Phase: "get_version",
			Error: err.Error(),
		})
	}

	return version, nil
}

// TableExists checks if a table exists
func TableExists(ctx context.Context, db *sql.DB, tableName string) (bool, error) {
	errFactory := errors.New()

	var exists bool
	err := db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name=?
        )
    `, tableName).Scan(&exists)
	if err != nil {
		return false, errFactory.WithData(ErrSchemaValidationFailed, struct {
			Phase string
			Table string
			Error string
		}{
			Phase: "check_table_exists",
			Table: tableName,
			Error: err.Error(),
		})
	}

	return exists, nil
}
