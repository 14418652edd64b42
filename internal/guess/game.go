// Package guess implements the number-guessing game: a secret number is
// drawn from a closed range and the player guesses until they hit it.
package guess

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"codeberg.org/mutker/termtoys/internal/errors"
)

const (
	DefaultMin = 1
	DefaultMax = 100

	introFormat   = "Guess a number between %d and %d:\n"
	prompt        = "Your guess: "
	invalidFormat = "Please enter a number between %d and %d!\n"
	tooSmall      = "Too small!\n"
	tooBig        = "Too big!\n"
	winFormat     = "Correct! You got it in %d %s.\n"
	timeFormat    = "Total time: %.2f seconds.\n"
)

// State is the game's position in its lifecycle.
type State int

const (
	Playing State = iota
	Won
)

func (s State) String() string {
	if s == Won {
		return "won"
	}

	return "playing"
}

// Result summarises a finished (or abandoned) game.
type Result struct {
	Secret    int
	Min       int
	Max       int
	Attempts  int
	Rejected  int
	StartedAt time.Time
	Duration  time.Duration
}

// Observer is notified of every input the game handles.
type Observer interface {
	Rejected(err error)
	Accepted(guess int, outcome Outcome)
	Won(result Result)
}

// Option configures a Game.
type Option func(*Game)

// WithRange sets the inclusive bounds of the secret.
func WithRange(minValue, maxValue int) Option {
	return func(g *Game) {
		g.min, g.max = minValue, maxValue
	}
}

// WithSecret fixes the secret instead of drawing it.
func WithSecret(secret int) Option {
	return func(g *Game) {
		g.secret = secret
		g.fixedSecret = true
	}
}

// WithRand draws the secret from r.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed draws the secret from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithObserver registers o for game events.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observers = append(g.observers, o)
	}
}

// Game holds the state of one round. It is not safe for concurrent use.
type Game struct {
	min, max    int
	secret      int
	fixedSecret bool
	state       State
	attempts    int
	rejected    int
	startedAt   time.Time
	duration    time.Duration
	now         func() time.Time
	rng         *rand.Rand
	observers   []Observer
}

// NewGame validates the options and draws the secret.
func NewGame(opts ...Option) (*Game, error) {
	errFactory := errors.New()

	g := &Game{
		min: DefaultMin,
		max: DefaultMax,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.min < 0 || g.min > g.max {
		return nil, errFactory.WithData(errors.ErrInvalidRange, fmt.Sprintf("[%d, %d]", g.min, g.max))
	}

	if g.fixedSecret {
		if g.secret < g.min || g.secret > g.max {
			return nil, errFactory.WithData(errors.ErrInvalidArgument, fmt.Sprintf("secret %d outside [%d, %d]", g.secret, g.min, g.max))
		}
		return g, nil
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.secret = g.min + int(g.rng.Uint64N(uint64(g.max-g.min)+1))

	return g, nil
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Attempts returns the number of accepted guesses so far.
func (g *Game) Attempts() int {
	return g.attempts
}

// Range returns the bounds of the secret.
func (g *Game) Range() (int, int) {
	return g.min, g.max
}

func (g *Game) start() {
	if g.startedAt.IsZero() {
		g.startedAt = g.now()
	}
}

// Play handles one line of input. Invalid input returns an error and
// leaves the game untouched; a valid guess is counted and compared.
func (g *Game) Play(line string) (Outcome, error) {
	if g.state == Won {
		return Equal, errors.New().WithMessage(errors.ErrInvalidArgument, "game already won")
	}
	g.start()

	n, err := ParseGuess(line, g.min, g.max)
	if err != nil {
		g.rejected++
		for _, o := range g.observers {
			o.Rejected(err)
		}
		return Equal, err
	}

	g.attempts++
	outcome := Compare(n, g.secret)
	for _, o := range g.observers {
		o.Accepted(n, outcome)
	}

	if outcome == Equal {
		g.state = Won
		g.duration = g.now().Sub(g.startedAt)
		result := g.Result()
		for _, o := range g.observers {
			o.Won(result)
		}
	}

	return outcome, nil
}

// Result returns the game summary. Duration is zero until the game is won.
func (g *Game) Result() Result {
	return Result{
		Secret:    g.secret,
		Min:       g.min,
		Max:       g.max,
		Attempts:  g.attempts,
		Rejected:  g.rejected,
		StartedAt: g.startedAt,
		Duration:  g.duration,
	}
}

// Run plays the game interactively until the secret is guessed. Input ends
// before a win yield ErrInputClosed.
func (g *Game) Run(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	errFactory := errors.New()
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, introFormat, g.min, g.max)
	g.start()

	for g.state == Playing {
		if err := ctx.Err(); err != nil {
			return g.Result(), errFactory.Wrap(errors.ErrCanceled, err)
		}

		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return g.Result(), errFactory.Wrap(errors.ErrReadInput, err)
			}
			if line == "" {
				fmt.Fprintln(out)
				return g.Result(), errFactory.Wrap(errors.ErrInputClosed, err)
			}
		}

		outcome, err := g.Play(line)
		if err != nil {
			fmt.Fprintf(out, invalidFormat, g.min, g.max)
			continue
		}

		switch outcome {
		case Less:
			fmt.Fprint(out, tooSmall)
		case Greater:
			fmt.Fprint(out, tooBig)
		case Equal:
			fmt.Fprintf(out, winFormat, g.attempts, plural(g.attempts, "attempt", "attempts"))
			fmt.Fprintf(out, timeFormat, g.duration.Seconds())
		}
	}

	return g.Result(), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
