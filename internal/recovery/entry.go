package recovery

// Entry is one day of recovery data, either from a device or self reported.
type Entry struct {
	Date          string   `json:"date"`
	SleepDuration *float64 `json:"sleepDuration,omitempty"` // hours
	RHR           *float64 `json:"RHR,omitempty"`           // resting heart rate, bpm
	HRV           *float64 `json:"HRV,omitempty"`           // ms
	// Soreness holds body area tags, e.g. legs, back
	Soreness []string `json:"soreness,omitempty"`
	// Fatigue is self rated, 1 to 10
	Fatigue *float64 `json:"fatigue,omitempty"`
	Source  string   `json:"source,omitempty"`
	Injury  []string `json:"injury,omitempty"`
}

func (e Entry) DateKey() string {
	return e.Date
}

func (e Entry) Clone() Entry {
	c := e
	c.SleepDuration = clonePtr(e.SleepDuration)
	c.RHR = clonePtr(e.RHR)
	c.HRV = clonePtr(e.HRV)
	c.Fatigue = clonePtr(e.Fatigue)
	c.Soreness = cloneTags(e.Soreness)
	c.Injury = cloneTags(e.Injury)
	return c
}

// Partial is a shallow patch for an entry: nil fields are left untouched.
// A non-nil empty slice clears the corresponding tag set.
type Partial struct {
	SleepDuration *float64 `json:"sleepDuration,omitempty"`
	RHR           *float64 `json:"RHR,omitempty"`
	HRV           *float64 `json:"HRV,omitempty"`
	Soreness      []string `json:"soreness"`
	Fatigue       *float64 `json:"fatigue,omitempty"`
	Source        *string  `json:"source,omitempty"`
	Injury        []string `json:"injury"`
}

func (p Partial) applyTo(e Entry) Entry {
	merged := e.Clone()
	if p.SleepDuration != nil {
		merged.SleepDuration = clonePtr(p.SleepDuration)
	}
	if p.RHR != nil {
		merged.RHR = clonePtr(p.RHR)
	}
	if p.HRV != nil {
		merged.HRV = clonePtr(p.HRV)
	}
	if p.Soreness != nil {
		merged.Soreness = cloneTags(p.Soreness)
	}
	if p.Fatigue != nil {
		merged.Fatigue = clonePtr(p.Fatigue)
	}
	if p.Source != nil {
		merged.Source = *p.Source
	}
	if p.Injury != nil {
		merged.Injury = cloneTags(p.Injury)
	}
	return merged
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	c := make([]string, len(tags))
	copy(c, tags)
	return c
}
