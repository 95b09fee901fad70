package recovery

// Light is a traffic light rating of one recovery metric.
type Light string

const (
	LightGreen   Light = "green"
	LightYellow  Light = "yellow"
	LightRed     Light = "red"
	LightUnknown Light = "unknown"
)

func (l Light) severity() int {
	switch l {
	case LightGreen:
		return 1
	case LightYellow:
		return 2
	case LightRed:
		return 3
	default:
		return 0
	}
}

type Readiness struct {
	Date    string `json:"date"`
	Sleep   Light  `json:"sleep"`
	RHR     Light  `json:"RHR"`
	HRV     Light  `json:"HRV"`
	Fatigue Light  `json:"fatigue"`
	// Overall is the worst of the known lights
	Overall Light `json:"overall"`
}

// ReadinessOf rates sleep, resting heart rate, heart rate variability and fatigue of an entry.
func ReadinessOf(e Entry) Readiness {
	r := Readiness{
		Date:    e.Date,
		Sleep:   higherIsBetter(e.SleepDuration, 8, 7),
		RHR:     lowerIsBetter(e.RHR, 60, 70),
		HRV:     higherIsBetter(e.HRV, 60, 40),
		Fatigue: lowerIsBetter(e.Fatigue, 3, 6),
	}

	r.Overall = LightUnknown
	for _, l := range []Light{r.Sleep, r.RHR, r.HRV, r.Fatigue} {
		if l.severity() > r.Overall.severity() {
			r.Overall = l
		}
	}
	return r
}

func higherIsBetter(v *float64, green, yellow float64) Light {
	switch {
	case v == nil:
		return LightUnknown
	case *v >= green:
		return LightGreen
	case *v >= yellow:
		return LightYellow
	default:
		return LightRed
	}
}

func lowerIsBetter(v *float64, green, yellow float64) Light {
	switch {
	case v == nil:
		return LightUnknown
	case *v <= green:
		return LightGreen
	case *v <= yellow:
		return LightYellow
	default:
		return LightRed
	}
}
