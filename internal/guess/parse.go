package guess

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/termtoys/internal/errors"
)

// ParseGuess validates a line of input as a whole number in [minValue, maxValue].
// Signs, decimal points and surrounding text are rejected with
// ErrInvalidFormat; values outside the bounds, including ones too large
// to represent, with ErrOutOfRange.
func ParseGuess(input string, minValue, maxValue int) (int, error) {
	errFactory := errors.New()

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errFactory.New(errors.ErrInvalidFormat)
	}

	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, errFactory.WithData(errors.ErrInvalidFormat, strconv.Quote(input))
		}
	}

	n, err := strconv.ParseUint(input, 10, strconv.IntSize-1)
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrOutOfRange, err)
	}

	value := int(n)
	if value < minValue || value > maxValue {
		return 0, errFactory.WithData(errors.ErrOutOfRange, value)
	}

	return value, nil
}
