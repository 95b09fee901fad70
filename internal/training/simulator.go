package training

import (
	"fmt"
	"strings"

	"github.com/WeakCookie/fit-path-hackathon/internal/store"
	"github.com/WeakCookie/fit-path-hackathon/pkg"

	log "github.com/sirupsen/logrus"
)

// Trajectory is the qualitative direction of a simulated training day.
type Trajectory string

const (
	TrajectoryImproved Trajectory = "IMPROVED"
	TrajectoryNeutral  Trajectory = "NEUTRAL"
	TrajectoryDeclined Trajectory = "DECLINED"
)

const (
	DefaultVariabilityFactor = 0.05

	// proportional mode draws the global magnitude uniformly in [min, min+span]
	proportionalMagnitudeMin  = 0.10
	proportionalMagnitudeSpan = 0.15

	// simple mode decline never shrinks a value below 10% of itself
	maxSimpleDecline = 0.9
)

func (t Trajectory) IsValid() bool {
	switch t {
	case TrajectoryImproved, TrajectoryNeutral, TrajectoryDeclined:
		return true
	default:
		return false
	}
}

// ParseTrajectory accepts the trajectory names as well as the UI option ids
// (performance-up, performance-neutral, performance-down).
func ParseTrajectory(s string) (Trajectory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "improved", "performance-up", "up":
		return TrajectoryImproved, nil
	case "neutral", "performance-neutral":
		return TrajectoryNeutral, nil
	case "declined", "performance-down", "down":
		return TrajectoryDeclined, nil
	default:
		return "", fmt.Errorf("unknown trajectory: %q", s)
	}
}

// RandSource is the random source of the simulators; *math/rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// DateSource provides the date stamped on simulated entries.
type DateSource interface {
	NowISODate() string
}

type SimulationParams struct {
	Trajectory        Trajectory
	VariabilityFactor float64
	// SimpleMode uses the variability factor as the exact percentage delta
	SimpleMode bool
}

// Simulator synthesizes the next training day from the most recent one.
type Simulator struct {
	rnd   RandSource
	today DateSource
}

func NewSimulator(rnd RandSource, today DateSource) *Simulator {
	return &Simulator{
		rnd:   rnd,
		today: today,
	}
}

// Run simulates the day after the most recent entry (by date) of history and
// returns a new slice with the simulated entry appended. An empty history is
// returned unchanged.
func (s *Simulator) Run(history []LogEntry, params SimulationParams) []LogEntry {
	latest, ok := store.LatestOf(history)
	if !ok {
		log.Debugln("training simulation: empty history, nothing to simulate")
		return history
	}

	simulated := s.Simulate(latest, params)
	newHistory := make([]LogEntry, 0, len(history)+1)
	newHistory = append(newHistory, history...)
	return append(newHistory, simulated)
}

// Simulate perturbs a single entry along the trajectory. Absent fields stay absent.
func (s *Simulator) Simulate(latest LogEntry, params SimulationParams) LogEntry {
	factor := params.VariabilityFactor
	if factor <= 0 {
		factor = DefaultVariabilityFactor
	}

	var transforms map[Metric]func(float64) float64
	if params.SimpleMode {
		transforms = s.simpleTransforms(params.Trajectory, factor)
	} else {
		transforms = s.proportionalTransforms(params.Trajectory, factor)
	}

	simulated := latest.Clone()
	simulated.Date = s.today.NowISODate()
	if transforms == nil {
		log.Warnf("training simulation: unknown trajectory [%s], values kept", params.Trajectory)
		return simulated
	}

	// metrics are visited in a fixed order, so equal random draws give equal output
	for _, m := range Metrics {
		v, ok := latest.Value(m)
		if !ok {
			continue
		}
		simulated.SetValue(m, pkg.RoundHalfUp(transforms[m](v), m.decimals()))
	}

	log.Tracef("training simulation [%s] simple=%t factor=%.3f: %s", params.Trajectory, params.SimpleMode, factor, simulated.Date)
	return simulated
}

func (s *Simulator) proportionalTransforms(trajectory Trajectory, variabilityFactor float64) map[Metric]func(float64) float64 {
	variation := func() float64 {
		return 1 + (s.rnd.Float64()-0.5)*variabilityFactor
	}

	switch trajectory {
	case TrajectoryImproved:
		improvement := 1 + (proportionalMagnitudeMin + s.rnd.Float64()*proportionalMagnitudeSpan)
		return map[Metric]func(float64) float64{
			MetricDuration:             func(v float64) float64 { return v * improvement * variation() },
			MetricDistance:             func(v float64) float64 { return v * improvement * variation() },
			MetricPace:                 func(v float64) float64 { return v / (improvement * variation()) },
			MetricCadence:              func(v float64) float64 { return v * (1 + 0.05*variation()) },
			MetricLactateThresholdPace: func(v float64) float64 { return v / (improvement * variation()) },
			MetricAerobicDecoupling:    func(v float64) float64 { return v * (1 - 0.2*variation()) },
			MetricOneMinHRR:            func(v float64) float64 { return v * (1 + 0.15*variation()) },
			MetricEfficiencyFactor:     func(v float64) float64 { return v * improvement * variation() },
		}
	case TrajectoryDeclined:
		decline := 1 - (proportionalMagnitudeMin + s.rnd.Float64()*proportionalMagnitudeSpan)
		return map[Metric]func(float64) float64{
			MetricDuration:             func(v float64) float64 { return v * decline * variation() },
			MetricDistance:             func(v float64) float64 { return v * decline * variation() },
			MetricPace:                 func(v float64) float64 { return v / (decline * variation()) },
			MetricCadence:              func(v float64) float64 { return v * (1 - 0.05*variation()) },
			MetricLactateThresholdPace: func(v float64) float64 { return v / (decline * variation()) },
			MetricAerobicDecoupling:    func(v float64) float64 { return v * (1 + 0.3*variation()) },
			MetricOneMinHRR:            func(v float64) float64 { return v * (1 - 0.15*variation()) },
			MetricEfficiencyFactor:     func(v float64) float64 { return v * decline * variation() },
		}
	case TrajectoryNeutral:
		return s.jitterTransforms(variabilityFactor)
	default:
		return nil
	}
}

func (s *Simulator) simpleTransforms(trajectory Trajectory, delta float64) map[Metric]func(float64) float64 {
	var change float64
	switch trajectory {
	case TrajectoryImproved:
		change = 1 + delta
	case TrajectoryDeclined:
		change = 1 - min(delta, maxSimpleDecline)
	case TrajectoryNeutral:
		// half the factor on each side: [-delta/2, +delta/2]
		return s.jitterTransforms(delta)
	default:
		return nil
	}

	transforms := make(map[Metric]func(float64) float64, len(Metrics))
	for _, m := range Metrics {
		if m.LowerIsBetter() {
			transforms[m] = func(v float64) float64 { return v / change }
		} else {
			transforms[m] = func(v float64) float64 { return v * change }
		}
	}
	return transforms
}

func (s *Simulator) jitterTransforms(variabilityFactor float64) map[Metric]func(float64) float64 {
	transforms := make(map[Metric]func(float64) float64, len(Metrics))
	for _, m := range Metrics {
		transforms[m] = func(v float64) float64 {
			return v * (1 + (s.rnd.Float64()-0.5)*variabilityFactor)
		}
	}
	return transforms
}
