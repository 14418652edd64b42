// Package temperature parses temperatures such as "36.6C" or "-40 °F" and
// converts them between the Celsius, Fahrenheit and Kelvin scales.
package temperature

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"codeberg.org/mutker/termtoys/internal/errors"
)

const absoluteZeroOffset = 273.15

// Temperature is a value on a given scale.
type Temperature struct {
	Value float64
	Unit  Unit
}

// New returns a Temperature of v in unit u.
func New(v float64, u Unit) Temperature {
	return Temperature{Value: v, Unit: u}
}

// Celsius returns t on the Celsius scale.
func (t Temperature) Celsius() float64 {
	switch t.Unit {
	case Fahrenheit:
		return (t.Value - 32) * 5 / 9
	case Kelvin:
		return t.Value - absoluteZeroOffset
	default:
		return t.Value
	}
}

// Fahrenheit returns t on the Fahrenheit scale.
func (t Temperature) Fahrenheit() float64 {
	if t.Unit == Fahrenheit {
		return t.Value
	}

	return t.Celsius()*9/5 + 32
}

// Kelvin returns t on the Kelvin scale.
func (t Temperature) Kelvin() float64 {
	if t.Unit == Kelvin {
		return t.Value
	}

	return t.Celsius() + absoluteZeroOffset
}

// In returns the value of t on scale u.
func (t Temperature) In(u Unit) float64 {
	switch u {
	case Fahrenheit:
		return t.Fahrenheit()
	case Kelvin:
		return t.Kelvin()
	default:
		return t.Celsius()
	}
}

// Convert returns t expressed on scale u.
func (t Temperature) Convert(u Unit) Temperature {
	return Temperature{Value: t.In(u), Unit: u}
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.2f%s", t.Value, t.Unit.Symbol())
}

// Split divides line into its leading run of digits, '.' and '-' and the
// remainder. Nothing is trimmed.
func Split(line string) (number, unit string) {
	i := strings.IndexFunc(line, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.' || r == '-')
	})
	if i < 0 {
		return line, ""
	}

	return line[:i], line[i:]
}

// Parse reads a temperature such as "100C", "98.6 °F" or "0". A missing
// unit means Celsius.
//
// A '-' anywhere in the numeric prefix is kept in it, so "12-3F" fails
// with ErrNumericFormat instead of being read as 12.
func Parse(line string) (Temperature, error) {
	errFactory := errors.New()

	line = strings.TrimSpace(line)
	number, token := Split(line)

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return Temperature{}, errFactory.WithData(errors.ErrNumericFormat, strconv.Quote(line))
	}

	unit, err := ParseUnit(token)
	if err != nil {
		return Temperature{}, err
	}

	return Temperature{Value: value, Unit: unit}, nil
}

// Report renders t and its value on every scale, one per line.
func Report(t Temperature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Input: %s\n", t)
	for _, u := range Units {
		fmt.Fprintf(&b, "%s: %s\n", u, t.Convert(u))
	}

	return b.String()
}
