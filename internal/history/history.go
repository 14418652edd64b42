// Package history stores finished games and conversions in SQLite so the
// guessing game can report personal bests.
package history

import (
	"context"

	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/logger"
)

type service struct {
	repo Repository
	cfg  Config
}

// No-op implementation
type noopRecorder struct{}

func NewService(ctx context.Context, cfg Config, log logger.Logger) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	// If history is disabled, return a no-op recorder
	if !cfg.Enabled {
		log.Debug().Msg("History disabled, using no-op recorder")
		return &noopRecorder{}, nil
	}

	repo, err := NewRepository(ctx, cfg, log)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to create history repository")
		return nil, err
	}

	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

func (s *service) RecordGame(ctx context.Context, game *GameRecord) error {
	errFactory := errors.New()

	if game == nil || game.Attempts <= 0 {
		return errFactory.New(ErrInvalidRecord)
	}

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrOperationCanceled, err)
	}

	if err := s.repo.InsertGame(ctx, game); err != nil {
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	return nil
}

func (s *service) RecordConversion(ctx context.Context, conversion *ConversionRecord) error {
	errFactory := errors.New()

	if conversion == nil {
		return errFactory.New(ErrInvalidRecord)
	}

	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrOperationCanceled, err)
	}

	if err := s.repo.InsertConversion(ctx, conversion); err != nil {
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	return nil
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *service) Close() error {
	errFactory := errors.New()

	if err := s.repo.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}

func (*noopRecorder) RecordGame(_ context.Context, _ *GameRecord) error {
	return nil
}

func (*noopRecorder) RecordConversion(_ context.Context, _ *ConversionRecord) error {
	return nil
}

func (*noopRecorder) Summary(_ context.Context) (Summary, error) {
	return Summary{}, nil
}

func (*noopRecorder) Close() error {
	return nil
}

// Noop returns a Recorder that stores nothing.
func Noop() Recorder {
	return &noopRecorder{}
}
