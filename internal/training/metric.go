package training

// Metric is one of the numeric training log fields that are simulated and scored.
type Metric string

const (
	MetricDuration             Metric = "duration"
	MetricDistance             Metric = "distance"
	MetricPace                 Metric = "pace"
	MetricCadence              Metric = "cadence"
	MetricLactateThresholdPace Metric = "lactateThresholdPace"
	MetricAerobicDecoupling    Metric = "aerobicDecoupling"
	MetricOneMinHRR            Metric = "oneMinHRR"
	MetricEfficiencyFactor     Metric = "efficiencyFactor"
)

// Metrics lists the comparable metrics, in the order they are simulated and scored.
var Metrics = []Metric{
	MetricDuration,
	MetricDistance,
	MetricPace,
	MetricCadence,
	MetricLactateThresholdPace,
	MetricAerobicDecoupling,
	MetricOneMinHRR,
	MetricEfficiencyFactor,
}

func (m Metric) String() string {
	return string(m)
}

// Tolerance is the relative error still considered a good prediction.
func (m Metric) Tolerance() float64 {
	switch m {
	case MetricPace, MetricLactateThresholdPace:
		return 0.05
	case MetricCadence:
		return 0.08
	case MetricAerobicDecoupling:
		return 0.15
	case MetricOneMinHRR:
		return 0.12
	default:
		// duration, distance, efficiency factor
		return 0.10
	}
}

// LowerIsBetter is true for paces and aerobic decoupling.
func (m Metric) LowerIsBetter() bool {
	switch m {
	case MetricPace, MetricLactateThresholdPace, MetricAerobicDecoupling:
		return true
	default:
		return false
	}
}

// decimals used when storing a simulated value
func (m Metric) decimals() int {
	switch m {
	case MetricDistance, MetricEfficiencyFactor:
		return 2
	case MetricAerobicDecoupling:
		return 1
	default:
		return 0
	}
}
