package guess_test

import (
	"strconv"
	"testing"

	"codeberg.org/mutker/termtoys/internal/errors"
	"codeberg.org/mutker/termtoys/internal/guess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuessValid(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"  1 ", 1},
		{"100", 100},
		{"007\n", 7},
		{"\t55\r\n", 55},
	}

	for _, tt := range tests {
		got, err := guess.ParseGuess(tt.in, 1, 100)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseGuessEveryValueInRange(t *testing.T) {
	for n := 1; n <= 100; n++ {
		got, err := guess.ParseGuess(strconv.Itoa(n), 1, 100)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestParseGuessInvalidFormat(t *testing.T) {
	inputs := []string{"", "   ", "abc", "-5", "+5", "4.2", "1e2", "42abc", "4 2", "٤٢", "0x10"}

	for _, in := range inputs {
		_, err := guess.ParseGuess(in, 1, 100)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.HasCode(err, errors.ErrInvalidFormat), "input %q: %v", in, err)
	}
}

func TestParseGuessOutOfRange(t *testing.T) {
	inputs := []string{"0", "101", "1000", "99999999999999999999999999"}

	for _, in := range inputs {
		_, err := guess.ParseGuess(in, 1, 100)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.HasCode(err, errors.ErrOutOfRange), "input %q: %v", in, err)
	}
}

func TestParseGuessCustomRange(t *testing.T) {
	got, err := guess.ParseGuess("0", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = guess.ParseGuess("9", 10, 20)
	assert.True(t, errors.HasCode(err, errors.ErrOutOfRange))

	_, err = guess.ParseGuess("21", 10, 20)
	assert.True(t, errors.HasCode(err, errors.ErrOutOfRange))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, guess.Equal, guess.Compare(50, 50))
	assert.Equal(t, guess.Less, guess.Compare(30, 50))
	assert.Equal(t, guess.Greater, guess.Compare(70, 50))

	for x := 1; x <= 20; x++ {
		for y := 1; y <= 20; y++ {
			got := guess.Compare(x, y)
			switch {
			case x < y:
				assert.Equal(t, guess.Less, got)
			case x > y:
				assert.Equal(t, guess.Greater, got)
			default:
				assert.Equal(t, guess.Equal, got)
			}
		}
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "equal", guess.Equal.String())
	assert.Equal(t, "less", guess.Less.String())
	assert.Equal(t, "greater", guess.Greater.String())
	assert.Equal(t, "unknown", guess.Outcome(9).String())
}
