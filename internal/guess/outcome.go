package guess

// Outcome is the result of comparing a guess with the secret.
type Outcome int

const (
	Equal Outcome = iota
	Less
	Greater
)

func (o Outcome) String() string {
	switch o {
	case Equal:
		return "equal"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare reports whether guess is below, above or equal to secret.
func Compare(guess, secret int) Outcome {
	switch {
	case guess < secret:
		return Less
	case guess > secret:
		return Greater
	default:
		return Equal
	}
}
