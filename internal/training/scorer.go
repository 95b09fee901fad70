package training

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/WeakCookie/fit-path-hackathon/pkg"
)

// Weights gives the share of each metric in the final score; presets sum to 1.0.
type Weights struct {
	Duration             float64 `json:"duration" toml:"duration"`
	Distance             float64 `json:"distance" toml:"distance"`
	Pace                 float64 `json:"pace" toml:"pace"`
	Cadence              float64 `json:"cadence" toml:"cadence"`
	LactateThresholdPace float64 `json:"lactateThresholdPace" toml:"lactate_threshold_pace"`
	AerobicDecoupling    float64 `json:"aerobicDecoupling" toml:"aerobic_decoupling"`
	OneMinHRR            float64 `json:"oneMinHRR" toml:"one_min_hrr"`
	EfficiencyFactor     float64 `json:"efficiencyFactor" toml:"efficiency_factor"`
}

func (w Weights) For(m Metric) float64 {
	switch m {
	case MetricDuration:
		return w.Duration
	case MetricDistance:
		return w.Distance
	case MetricPace:
		return w.Pace
	case MetricCadence:
		return w.Cadence
	case MetricLactateThresholdPace:
		return w.LactateThresholdPace
	case MetricAerobicDecoupling:
		return w.AerobicDecoupling
	case MetricOneMinHRR:
		return w.OneMinHRR
	case MetricEfficiencyFactor:
		return w.EfficiencyFactor
	default:
		return 0
	}
}

func (w Weights) Sum() float64 {
	var sum float64
	for _, m := range Metrics {
		sum += w.For(m)
	}
	return sum
}

const (
	PresetBalanced           = "balanced"
	PresetPerformanceFocused = "performance-focused"
	PresetEnduranceFocused   = "endurance-focused"
	PresetRecoveryFocused    = "recovery-focused"
)

var (
	BalancedWeights = Weights{
		Duration:             0.15,
		Distance:             0.15,
		Pace:                 0.20,
		Cadence:              0.10,
		LactateThresholdPace: 0.15,
		AerobicDecoupling:    0.10,
		OneMinHRR:            0.10,
		EfficiencyFactor:     0.05,
	}
	// pace and efficiency
	PerformanceFocusedWeights = Weights{
		Duration:             0.10,
		Distance:             0.10,
		Pace:                 0.30,
		Cadence:              0.15,
		LactateThresholdPace: 0.20,
		AerobicDecoupling:    0.05,
		OneMinHRR:            0.05,
		EfficiencyFactor:     0.05,
	}
	// duration and distance
	EnduranceFocusedWeights = Weights{
		Duration:             0.25,
		Distance:             0.25,
		Pace:                 0.15,
		Cadence:              0.10,
		LactateThresholdPace: 0.10,
		AerobicDecoupling:    0.05,
		OneMinHRR:            0.05,
		EfficiencyFactor:     0.05,
	}
	// heart rate recovery and aerobic decoupling
	RecoveryFocusedWeights = Weights{
		Duration:             0.10,
		Distance:             0.10,
		Pace:                 0.15,
		Cadence:              0.10,
		LactateThresholdPace: 0.10,
		AerobicDecoupling:    0.25,
		OneMinHRR:            0.20,
		EfficiencyFactor:     0.00,
	}
)

var weightPresets = map[string]Weights{
	PresetBalanced:           BalancedWeights,
	PresetPerformanceFocused: PerformanceFocusedWeights,
	PresetEnduranceFocused:   EnduranceFocusedWeights,
	PresetRecoveryFocused:    RecoveryFocusedWeights,
}

func WeightPreset(name string) (Weights, error) {
	w, ok := weightPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Weights{}, fmt.Errorf("unknown weight preset: %q", name)
	}
	return w, nil
}

func WeightPresetNames() []string {
	names := make([]string, 0, len(weightPresets))
	for name := range weightPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MetricScore maps a relative error to a score in [-100, 100], using five
// linear tiers measured in multiples of the metric tolerance:
//
//	error <= tol           -> [80, 100]
//	error <= 2*tol         -> [50, 80]
//	error <= 3*tol         -> [10, 50]
//	error <= 5*tol         -> [-50, 10]
//	error >  5*tol         -> -50 - min((error - 5*tol) * 10, 50)
func MetricScore(relativeError, tolerance float64) float64 {
	e, tol := relativeError, tolerance
	switch {
	case e <= tol:
		return 100 - (e/tol)*20
	case e <= tol*2:
		return 80 - ((e-tol)/tol)*30
	case e <= tol*3:
		return 50 - ((e-tol*2)/tol)*40
	case e <= tol*5:
		return 10 - ((e-tol*3)/(tol*2))*60
	default:
		return -50 - math.Min((e-tol*5)*10, 50)
	}
}

// Score compares actual and predicted over the metrics present on both and
// returns the weighted average metric score divided by 100, roughly in [-1, 1].
// Zero is returned when nothing is comparable.
func Score(actual, predicted LogEntry, weights Weights) float64 {
	var totalScore, totalWeight float64
	for _, m := range Metrics {
		a, ok := actual.Value(m)
		if !ok || a == 0 {
			// relative error is undefined for a zero actual value
			continue
		}
		p, ok := predicted.Value(m)
		if !ok {
			continue
		}

		relativeError := math.Abs(a-p) / math.Abs(a)
		w := weights.For(m)
		totalScore += MetricScore(relativeError, m.Tolerance()) * w
		totalWeight += w
	}

	if totalWeight <= 0 {
		return 0
	}
	return pkg.RoundHalfUp(totalScore/totalWeight, 0) / 100
}
