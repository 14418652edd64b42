package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/logger"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type repository struct {
	db     *sql.DB
	logger logger.Logger
	mu     sync.Mutex
}

// NewRepository opens (creating if needed) the SQLite database at
// cfg.DBPath and brings its schema up to date.
func NewRepository(ctx context.Context, cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	dsn := cfg.DBPath + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := ValidateAndUpdateSchema(ctx, db, filepath.Join(dir, backupDirName), log); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Debug().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("History repository initialized")

	return &repository{
		db:     db,
		logger: log,
	}, nil
}

func (r *repository) InsertGame(ctx context.Context, game *GameRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, insertGameSQL,
		game.ID,
		game.StartedAt.UnixMilli(),
		int64(game.Secret),
		int64(game.Min),
		int64(game.Max),
		int64(game.Attempts),
		int64(game.Rejected),
		game.Duration.Milliseconds(),
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to insert game")
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *repository) InsertConversion(ctx context.Context, conversion *ConversionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversion.ID == "" {
		conversion.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, insertConversionSQL,
		conversion.ID,
		conversion.CreatedAt.UnixMilli(),
		conversion.Input,
		conversion.Value,
		conversion.Unit,
		conversion.Celsius,
		conversion.Fahrenheit,
		conversion.Kelvin,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to insert conversion")
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *repository) Summary(ctx context.Context) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	errFactory := errors.New()

	var (
		s       Summary
		fastest int64
	)
	err := r.db.QueryRowContext(ctx, gameSummarySQL).Scan(
		&s.GamesPlayed,
		&s.BestAttempts,
		&s.AverageAttempts,
		&fastest,
	)
	if err != nil {
		return Summary{}, errFactory.Wrap(ErrStorageAccess, err)
	}
	s.FastestGame = time.Duration(fastest) * time.Millisecond

	if err := r.db.QueryRowContext(ctx, conversionCountSQL).Scan(&s.Conversions); err != nil {
		return Summary{}, errFactory.Wrap(ErrStorageAccess, err)
	}

	return s, nil
}

func (r *repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Checkpoint WAL and cleanup on close
	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		r.logger.Debug().Err(err).Msg("Failed to checkpoint WAL")
	}

	if err := r.db.Close(); err != nil {
		return errors.New().WithData(ErrStorageClose, struct {
			Phase string
			Error string
		}{
			Phase: "close_database",
			Error: err.Error(),
		})
	}

	r.logger.Debug().Msg("History repository closed")

	return nil
}
