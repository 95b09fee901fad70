package prediction

import (
	"github.com/WeakCookie/fit-path-hackathon/internal/store"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"
)

const (
	SourceMock = "mock"
	SourceAI   = "ai"
)

// Field is a single predicted training field, backed by a research claim.
type Field[T any] struct {
	Value     T      `json:"value"`
	Reference string `json:"reference,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

// Fields holds the fields a research paper makes a claim about.
type Fields struct {
	Exercise  *Field[string]  `json:"exercise,omitempty"`
	Intensity *Field[float64] `json:"intensity,omitempty"`
	Duration  *Field[float64] `json:"duration,omitempty"`
	RestTime  *Field[float64] `json:"restTime,omitempty"`
}

func (f Fields) Empty() bool {
	return f.Exercise == nil && f.Intensity == nil && f.Duration == nil && f.RestTime == nil
}

// Prediction is what a research paper expects the training of a day to look like.
type Prediction struct {
	Date    string `json:"date"`
	PaperID string `json:"paperId"`
	Source  string `json:"source"`
	Fields  Fields `json:"predictions"`
	// Row is the complete predicted training log the actual one is scored against
	Row training.LogEntry `json:"row"`
}

func (p Prediction) DateKey() string {
	return p.Date
}

// Apply overrides the predicted fields on a copy of base, dated with the prediction date.
func (p Prediction) Apply(base training.LogEntry) training.LogEntry {
	row := base.Clone()
	if p.Date != "" {
		row.Date = p.Date
	}
	if p.Fields.Exercise != nil {
		row.Exercise = p.Fields.Exercise.Value
	}
	if p.Fields.Intensity != nil {
		v := p.Fields.Intensity.Value
		row.Intensity = &v
	}
	if p.Fields.Duration != nil {
		row.SetValue(training.MetricDuration, p.Fields.Duration.Value)
	}
	if p.Fields.RestTime != nil {
		v := p.Fields.RestTime.Value
		row.RestTime = &v
	}
	return row
}

type Store struct {
	*store.Store[Prediction]
}

func NewStore(seed []Prediction) *Store {
	return &Store{
		Store: store.New(seed),
	}
}

// ForPaper returns the predictions of a paper, ascending by date.
func (s *Store) ForPaper(paperID string) []Prediction {
	return s.Filter(func(p Prediction) bool {
		return p.PaperID == paperID
	})
}

// ForDate returns all predictions made for the given day.
func (s *Store) ForDate(date string) []Prediction {
	return s.Filter(func(p Prediction) bool {
		return p.Date == date
	})
}
