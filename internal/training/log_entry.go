package training

import (
	"github.com/WeakCookie/fit-path-hackathon/internal/store"
)

// LogEntry is one day of training. All numeric fields are optional:
// nil means "not recorded", which is never the same as zero.
type LogEntry struct {
	Date     string   `json:"date"`
	RestTime *float64 `json:"restTime,omitempty"` // seconds
	Exercise string   `json:"exercise,omitempty"`
	// Intensity is the RPE, 1 to 10
	Intensity *float64 `json:"intensity,omitempty"`

	// strength
	Rep *int `json:"rep,omitempty"`
	Set *int `json:"set,omitempty"`

	// endurance
	Duration             *float64 `json:"duration,omitempty"`             // seconds
	Distance             *float64 `json:"distance,omitempty"`             // kilometers
	Pace                 *float64 `json:"pace,omitempty"`                 // seconds per km
	Cadence              *float64 `json:"cadence,omitempty"`              // steps per minute
	LactateThresholdPace *float64 `json:"lactateThresholdPace,omitempty"` // seconds per km
	AerobicDecoupling    *float64 `json:"aerobicDecoupling,omitempty"`    // percent
	OneMinHRR            *float64 `json:"oneMinHRR,omitempty"`            // bpm
	EfficiencyFactor     *float64 `json:"efficiencyFactor,omitempty"`
}

func (e LogEntry) DateKey() string {
	return e.Date
}

// Value returns the value of the given metric and whether it is present.
func (e LogEntry) Value(m Metric) (float64, bool) {
	p := *e.metricField(m)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// SetValue sets the given metric; the entry must be addressable.
func (e *LogEntry) SetValue(m Metric, v float64) {
	*e.metricField(m) = &v
}

func (e *LogEntry) metricField(m Metric) **float64 {
	switch m {
	case MetricDuration:
		return &e.Duration
	case MetricDistance:
		return &e.Distance
	case MetricPace:
		return &e.Pace
	case MetricCadence:
		return &e.Cadence
	case MetricLactateThresholdPace:
		return &e.LactateThresholdPace
	case MetricAerobicDecoupling:
		return &e.AerobicDecoupling
	case MetricOneMinHRR:
		return &e.OneMinHRR
	case MetricEfficiencyFactor:
		return &e.EfficiencyFactor
	default:
		var none *float64
		return &none
	}
}

// Clone returns a deep copy, so that pointer fields are not shared.
func (e LogEntry) Clone() LogEntry {
	c := e
	c.RestTime = clonePtr(e.RestTime)
	c.Intensity = clonePtr(e.Intensity)
	c.Rep = clonePtr(e.Rep)
	c.Set = clonePtr(e.Set)
	for _, m := range Metrics {
		if v, ok := e.Value(m); ok {
			c.SetValue(m, v)
		}
	}
	return c
}

// NewStore creates the training log store seeded with the given entries.
func NewStore(seed []LogEntry) *store.Store[LogEntry] {
	return store.New(seed)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
