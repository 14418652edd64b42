package stats

import (
	"codeberg.org/mutker/termtoys/internal/temperature"
	"github.com/prometheus/client_golang/prometheus"
)

// ConversionStats counts temperature conversions.
type ConversionStats struct {
	conversions *prometheus.CounterVec
	errors      *prometheus.CounterVec
}

func NewConversionStats(ctl *Ctl) *ConversionStats {
	return &ConversionStats{
		conversions: ctl.RegisterCounterVec("conversions_total", "Successful conversions by input unit", "unit"),
		errors:      ctl.RegisterCounterVec("errors_total", "Failed conversions by reason", "reason"),
	}
}

func (s *ConversionStats) Converted(t temperature.Temperature) {
	s.conversions.WithLabelValues(t.Unit.String()).Inc()
}

func (s *ConversionStats) Failed(err error) {
	s.errors.WithLabelValues(reason(err)).Inc()
}
