package stats

import (
	"codeberg.org/mutker/termtoys/internal/guess"
	"github.com/prometheus/client_golang/prometheus"
)

// GameStats counts guessing-game events. It implements guess.Observer.
type GameStats struct {
	attempts prometheus.Counter
	guesses  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	won      prometheus.Counter
	duration prometheus.Histogram
}

var _ guess.Observer = (*GameStats)(nil)

func NewGameStats(ctl *Ctl) *GameStats {
	return &GameStats{
		attempts: ctl.RegisterCounter("attempts_total", "Accepted guesses"),
		guesses:  ctl.RegisterCounterVec("guesses_total", "Accepted guesses by outcome", "outcome"),
		rejected: ctl.RegisterCounterVec("rejected_total", "Rejected inputs by reason", "reason"),
		won:      ctl.RegisterCounter("games_won_total", "Games won"),
		duration: ctl.RegisterHistogram("duration_seconds", "Time taken to win a game", SecondsBucketsGame),
	}
}

func (s *GameStats) Rejected(err error) {
	s.rejected.WithLabelValues(reason(err)).Inc()
}

func (s *GameStats) Accepted(_ int, outcome guess.Outcome) {
	s.attempts.Inc()
	s.guesses.WithLabelValues(outcome.String()).Inc()
}

func (s *GameStats) Won(result guess.Result) {
	s.won.Inc()
	s.duration.Observe(result.Duration.Seconds())
}
