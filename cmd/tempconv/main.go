package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/termtoys/internal/config"
	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/history"
	"codeberg.org/mutker/termtoys/internal/logger"
	"codeberg.org/mutker/termtoys/internal/stats"
	"codeberg.org/mutker/termtoys/internal/temperature"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const prompt = "Enter a temperature (e.g. 36.6C, 98.6F, 300K): "

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout))
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load("tempconv", args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger.Init(cfg.GetLogLevel(), nil)
	logger.Debug().Msg("Config loaded")

	ctl := stats.NewCtl("tempconv", nil)
	conversions := stats.NewConversionStats(ctl)
	defer writeMetrics(ctl, cfg.GetMetricsFile())

	if isTerminal(in) {
		fmt.Fprint(out, prompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error().Err(err).Msg("failed to read input")
		return 1
	}

	t, err := temperature.Parse(line)
	if err != nil {
		conversions.Failed(err)
		logger.Debug().Err(err).Str("input", line).Msg("Conversion failed")
		fmt.Fprintf(out, "Error: %v\n", err)
		return 0
	}

	fmt.Fprint(out, temperature.Report(t))
	conversions.Converted(t)

	if cfg.IsHistoryEnabled() {
		record(ctx, cfg, line, t)
	}

	return 0
}

func record(ctx context.Context, cfg config.Provider, line string, t temperature.Temperature) {
	recorder, err := history.NewService(ctx, history.Config{DBPath: cfg.GetHistoryDBPath(), Enabled: true}, logger.Default())
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.GetHistoryDBPath()).Msg("failed to open history")
		return
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close history")
		}
	}()

	if err := recorder.RecordConversion(ctx, &history.ConversionRecord{
		CreatedAt:  time.Now(),
		Input:      strings.TrimSpace(line),
		Value:      t.Value,
		Unit:       t.Unit.String(),
		Celsius:    t.Celsius(),
		Fahrenheit: t.Fahrenheit(),
		Kelvin:     t.Kelvin(),
	}); err != nil {
		logger.Error().Err(err).Msg("failed to record conversion")
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeMetrics(ctl *stats.Ctl, path string) {
	if path == "" {
		return
	}

	if err := ctl.WriteTextfile(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to write metrics")
	}
}
