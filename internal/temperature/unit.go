package temperature

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/termtoys/internal/errors"
)

// Unit is one of the supported temperature scales.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

// Units lists every supported scale in report order.
var Units = []Unit{Celsius, Fahrenheit, Kelvin}

// recognised unit tokens, lower-cased
var unitTokens = map[string]Unit{
	"c":          Celsius,
	"°c":         Celsius,
	"℃":          Celsius,
	"celsius":    Celsius,
	"f":          Fahrenheit,
	"°f":         Fahrenheit,
	"℉":          Fahrenheit,
	"fahrenheit": Fahrenheit,
	"k":          Kelvin,
	"kelvin":     Kelvin,
}

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Symbol returns the unit as printed after a value.
func (u Unit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

// ParseUnit resolves a unit token. The token is trimmed and matched
// case-insensitively; an empty token means Celsius.
func ParseUnit(token string) (Unit, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Celsius, nil
	}

	if u, ok := unitTokens[strings.ToLower(token)]; ok {
		return u, nil
	}

	return Celsius, errors.New().WithData(errors.ErrUnknownUnit, token)
}
