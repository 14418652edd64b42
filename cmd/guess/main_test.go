package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("TERMTOYS_CONFIG", "")

	return dir
}

func TestRunWin(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	code := run(context.Background(), []string{"--min", "1", "--max", "3", "--seed", "7"}, strings.NewReader("x\n1\n2\n3\n"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Guess a number between 1 and 3:\n")
	assert.Contains(t, out.String(), "Please enter a number between 1 and 3!\n")
	assert.Contains(t, out.String(), "Correct! You got it in")
	assert.Contains(t, out.String(), "Total time: ")
}

func TestRunInputClosed(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	code := run(context.Background(), []string{"--min", "5", "--max", "6"}, strings.NewReader(""), &out)

	assert.Equal(t, 1, code)
}

func TestRunBadConfig(t *testing.T) {
	isolate(t)

	code := run(context.Background(), []string{"--min", "10", "--max", "1"}, strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, 1, code)
}

func TestRunHelp(t *testing.T) {
	isolate(t)

	code := run(context.Background(), []string{"--help"}, strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, 0, code)
}

func TestRunHistoryAndStats(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "history.db")

	var out bytes.Buffer
	code := run(context.Background(), []string{"--stats", "--history-db", dbPath}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	assert.Equal(t, "No games recorded yet.\n", out.String())

	args := []string{"--history", "--history-db", dbPath, "--min", "4", "--max", "4"}
	code = run(context.Background(), args, strings.NewReader("4\n"), &bytes.Buffer{})
	require.Equal(t, 0, code)

	out.Reset()
	code = run(context.Background(), []string{"--stats", "--history-db", dbPath}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Games played: 1\n")
	assert.Contains(t, out.String(), "Fewest attempts: 1\n")
}

func TestRunStatsUnreadableHistory(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	var out bytes.Buffer
	code := run(context.Background(), []string{"--stats", "--history-db", filepath.Join(blocker, "h.db")}, strings.NewReader(""), &out)

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
}

func TestRunPlaysWithUnreadableHistory(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	var out bytes.Buffer
	args := []string{"--history", "--history-db", filepath.Join(blocker, "h.db"), "--min", "3", "--max", "3"}
	code := run(context.Background(), args, strings.NewReader("3\n"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Correct! You got it in 1 attempt")
}

func TestRunWritesMetrics(t *testing.T) {
	dir := isolate(t)
	metricsPath := filepath.Join(dir, "guess.prom")

	args := []string{"--min", "2", "--max", "2", "--metrics-file", metricsPath}
	code := run(context.Background(), args, strings.NewReader("1\n2\n"), &bytes.Buffer{})
	require.Equal(t, 0, code)

	content, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `termtoys_guess_rejected_total{reason="out_of_range"} 1`)
	assert.Contains(t, string(content), "termtoys_guess_games_won_total 1")
}
