package history

import (
	"context"
	"time"
)

// Recorder is the history service used by the commands.
type Recorder interface {
	RecordGame(ctx context.Context, game *GameRecord) error
	RecordConversion(ctx context.Context, conversion *ConversionRecord) error
	Summary(ctx context.Context) (Summary, error)
	Close() error
}

// Repository defines the interface for history data storage
type Repository interface {
	InsertGame(ctx context.Context, game *GameRecord) error
	InsertConversion(ctx context.Context, conversion *ConversionRecord) error
	Summary(ctx context.Context) (Summary, error)
	Close() error
}

// GameRecord is one won game.
type GameRecord struct {
	ID        string
	StartedAt time.Time
	Secret    int
	Min       int
	Max       int
	Attempts  int
	Rejected  int
	Duration  time.Duration
}

// ConversionRecord is one successful temperature conversion.
type ConversionRecord struct {
	ID         string
	CreatedAt  time.Time
	Input      string
	Value      float64
	Unit       string
	Celsius    float64
	Fahrenheit float64
	Kelvin     float64
}

// Summary aggregates everything stored so far.
type Summary struct {
	GamesPlayed     int
	BestAttempts    int
	AverageAttempts float64
	FastestGame     time.Duration
	Conversions     int
}
