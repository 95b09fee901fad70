package aibackend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/WeakCookie/fit-path-hackathon/internal/training"
)

type TrainingStatus string

const (
	StatusPerformanceIncreased TrainingStatus = "PERFORMANCE_INCREASED"
	StatusPerformanceNeutral   TrainingStatus = "PERFORMANCE_NEUTRAL"
	StatusPerformanceDecreased TrainingStatus = "PERFORMANCE_DECREASED"
)

// StatusFor maps a trajectory to the training status the AI server understands.
// Unknown trajectories are reported as neutral.
func StatusFor(t training.Trajectory) TrainingStatus {
	switch t {
	case training.TrajectoryImproved:
		return StatusPerformanceIncreased
	case training.TrajectoryDeclined:
		return StatusPerformanceDecreased
	default:
		return StatusPerformanceNeutral
	}
}

// CurrentForm is what the user reports about today.
type CurrentForm struct {
	TrainingStatus TrainingStatus `json:"training_status"`
	InjuryStatus   string         `json:"injury_status,omitempty"`
	RecoveryStatus string         `json:"recovery_status,omitempty"`
}

// LatestTraining is the training log in the AI server wire format.
type LatestTraining struct {
	Date      string   `json:"date"`
	RestTime  *float64 `json:"restTime,omitempty"`
	Exercise  string   `json:"exercise,omitempty"`
	Intensity *float64 `json:"intensity,omitempty"`
	Rep       *int     `json:"rep,omitempty"`
	Set       *int     `json:"set,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Pace      *float64 `json:"pace,omitempty"`
	Cadence   *float64 `json:"cadence,omitempty"`
	// the AI server spells it this way
	LactateThresholdPace *float64 `json:"lactaseThresholdPace,omitempty"`
	AerobicDecoupling    *float64 `json:"aerobicDecoupling,omitempty"`
	OneMinHRR            *float64 `json:"oneMinHRR,omitempty"`
	EfficiencyFactor     *float64 `json:"efficiencyFactor,omitempty"`
}

func latestTrainingFrom(e training.LogEntry) *LatestTraining {
	return &LatestTraining{
		Date:                 e.Date,
		RestTime:             e.RestTime,
		Exercise:             e.Exercise,
		Intensity:            e.Intensity,
		Rep:                  e.Rep,
		Set:                  e.Set,
		Duration:             e.Duration,
		Distance:             e.Distance,
		Pace:                 e.Pace,
		Cadence:              e.Cadence,
		LactateThresholdPace: e.LactateThresholdPace,
		AerobicDecoupling:    e.AerobicDecoupling,
		OneMinHRR:            e.OneMinHRR,
		EfficiencyFactor:     e.EfficiencyFactor,
	}
}

type SuggestionRequest struct {
	UserID         string          `json:"user_id"`
	CurrentForm    CurrentForm     `json:"currentForm"`
	LatestTraining *LatestTraining `json:"latestTraining,omitempty"`
}

// NewSuggestionRequest builds the request for a simulation round. Tags are
// joined with ", " and left out when none are selected.
func NewSuggestionRequest(
	userID string,
	trajectory training.Trajectory,
	injuries, recoveries []string,
	latest *training.LogEntry,
) SuggestionRequest {
	req := SuggestionRequest{
		UserID: userID,
		CurrentForm: CurrentForm{
			TrainingStatus: StatusFor(trajectory),
			InjuryStatus:   strings.Join(injuries, ", "),
			RecoveryStatus: strings.Join(recoveries, ", "),
		},
	}
	if latest != nil {
		req.LatestTraining = latestTrainingFrom(*latest)
	}
	return req
}

const (
	ClaimExercise  = "exercise"
	ClaimIntensity = "intensity"
	ClaimDuration  = "duration"
	ClaimRestTime  = "rest_time"
)

// FlexValue is a JSON value sent either as a string or as a number.
type FlexValue struct {
	str    string
	num    float64
	number bool
}

func StringValue(s string) FlexValue {
	return FlexValue{str: s}
}

func NumberValue(n float64) FlexValue {
	return FlexValue{num: n, number: true}
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = FlexValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value is neither a string nor a number: %w", err)
	}
	*v = NumberValue(n)
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.number {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

func (v FlexValue) String() string {
	if v.number {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Float64 returns the numeric value; strings are parsed.
func (v FlexValue) Float64() (float64, bool) {
	if v.number {
		return v.num, true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type Claim struct {
	Type          string    `json:"type"`
	ModifiedValue FlexValue `json:"modified_value"`
	Reasoning     string    `json:"reasoning"`
	Reference     string    `json:"reference"`
}

type DailySuggestions struct {
	Date   string  `json:"date"`
	Claims []Claim `json:"claims"`
}

type PredictionItem struct {
	Type       string    `json:"type"`
	Prediction FlexValue `json:"prediction"`
}

type DailyPredictions struct {
	Date        string           `json:"date"`
	Predictions []PredictionItem `json:"predictions"`
}

type SuggestionResponse struct {
	PaperID          int              `json:"paper_id"`
	DailySuggestions DailySuggestions `json:"daily_suggestions"`
	DailyPredictions DailyPredictions `json:"daily_predictions"`
}
