package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"codeberg.org/mutker/termtoys/internal/config"
	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/guess"
	"codeberg.org/mutker/termtoys/internal/history"
	"codeberg.org/mutker/termtoys/internal/logger"
	"codeberg.org/mutker/termtoys/internal/stats"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout))
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load("guess", args, config.WithGameFlags())
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger.Init(cfg.GetLogLevel(), nil)
	logger.Debug().Msg("Config loaded")

	recorder, err := openHistory(ctx, cfg, cfg.Stats)
	if err != nil {
		logError(err, "failed to open history")
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close history")
		}
	}()

	if cfg.Stats {
		return printSummary(ctx, recorder, out)
	}

	ctl := stats.NewCtl("guess", nil)
	defer writeMetrics(ctl, cfg.GetMetricsFile())

	opts := []guess.Option{
		guess.WithRange(cfg.GetRange()),
		guess.WithObserver(stats.NewGameStats(ctl)),
	}
	if seed := cfg.GetSeed(); seed != 0 {
		opts = append(opts, guess.WithSeed(seed))
	}

	game, err := guess.NewGame(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to start game")
		return 1
	}

	result, err := game.Run(ctx, in, out)
	if err != nil {
		if errors.HasCode(err, errors.ErrInputClosed) {
			logger.Warn().Int("attempts", result.Attempts).Msg("Input closed before the number was guessed")
		} else {
			logError(err, "error in game loop")
		}
		return 1
	}

	logger.Info().
		Int("attempts", result.Attempts).
		Int("rejected", result.Rejected).
		Dur("duration", result.Duration).
		Msg("Game won")

	if err := recorder.RecordGame(ctx, &history.GameRecord{
		StartedAt: result.StartedAt,
		Secret:    result.Secret,
		Min:       result.Min,
		Max:       result.Max,
		Attempts:  result.Attempts,
		Rejected:  result.Rejected,
		Duration:  result.Duration,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to record game")
	}

	return 0
}

// openHistory opens the history database. During play a database that cannot
// be opened is replaced by a no-op recorder; in stats mode the error is
// returned.
func openHistory(ctx context.Context, cfg config.Provider, statsOnly bool) (history.Recorder, error) {
	recorder, err := history.NewService(ctx, history.Config{
		DBPath:  cfg.GetHistoryDBPath(),
		Enabled: cfg.IsHistoryEnabled() || statsOnly,
	}, logger.Default())
	if err == nil {
		return recorder, nil
	}
	if statsOnly {
		return nil, err
	}

	logger.Error().Err(err).Str("path", cfg.GetHistoryDBPath()).Msg("failed to open history, continuing without it")
	return history.Noop(), nil
}

func logError(err error, msg string) {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.ErrorWithCode(appErr).Msg(msg)
		return
	}

	logger.Error().Err(err).Msg(msg)
}

func printSummary(ctx context.Context, recorder history.Recorder, out io.Writer) int {
	summary, err := recorder.Summary(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read history")
		return 1
	}

	if summary.GamesPlayed == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
	} else {
		fmt.Fprintf(out, "Games played: %d\n", summary.GamesPlayed)
		fmt.Fprintf(out, "Fewest attempts: %d\n", summary.BestAttempts)
		fmt.Fprintf(out, "Average: %.2f attempts\n", summary.AverageAttempts)
		fmt.Fprintf(out, "Fastest: %.2f seconds\n", summary.FastestGame.Seconds())
	}

	if summary.Conversions > 0 {
		fmt.Fprintf(out, "Temperature conversions: %d\n", summary.Conversions)
	}

	return 0
}

func writeMetrics(ctl *stats.Ctl, path string) {
	if path == "" {
		return
	}

	if err := ctl.WriteTextfile(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to write metrics")
	}
}
