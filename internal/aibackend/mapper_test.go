package aibackend_test

import (
	"encoding/json"
	"testing"

	"github.com/WeakCookie/fit-path-hackathon/internal/aibackend"
	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSuggestion(t *testing.T) {
	var resp aibackend.SuggestionResponse
	require.NoError(t, json.Unmarshal([]byte(suggestionRespJSON), &resp))

	p := aibackend.MapSuggestion(resp)
	assert.Equal(t, "3", p.PaperID)
	assert.Equal(t, "2025-08-20", p.Date)
	assert.Equal(t, prediction.SourceAI, p.Source)

	assert.Equal(t, &prediction.Field[string]{
		Value:     "Tempo Run",
		Reference: "Davis 2022",
		Reasoning: "builds threshold",
	}, p.Fields.Exercise)
	assert.Equal(t, &prediction.Field[float64]{
		Value:     1800,
		Reference: "Davis 2022",
		Reasoning: "shorter session",
	}, p.Fields.Duration)
	require.NotNil(t, p.Fields.Intensity)
	assert.Equal(t, 7.0, p.Fields.Intensity.Value)
	assert.Nil(t, p.Fields.RestTime)
}

func TestMapSuggestion_SkipsUnknownAndInvalidClaims(t *testing.T) {
	resp := aibackend.SuggestionResponse{
		PaperID: 1,
		DailySuggestions: aibackend.DailySuggestions{
			Claims: []aibackend.Claim{
				{Type: "cadence", ModifiedValue: aibackend.NumberValue(180)},
				{Type: aibackend.ClaimRestTime, ModifiedValue: aibackend.StringValue("a couple of minutes")},
				{Type: aibackend.ClaimExercise, ModifiedValue: aibackend.NumberValue(5)},
			},
		},
	}

	p := aibackend.MapSuggestion(resp)
	assert.Equal(t, "1", p.PaperID)
	assert.Nil(t, p.Fields.RestTime)
	assert.Nil(t, p.Fields.Duration)
	require.NotNil(t, p.Fields.Exercise)
	assert.Equal(t, "5", p.Fields.Exercise.Value)
}

func TestFlexValue_JSON(t *testing.T) {
	var claim aibackend.Claim
	require.NoError(t, json.Unmarshal([]byte(`{"type":"duration","modified_value":2400.5}`), &claim))
	v, ok := claim.ModifiedValue.Float64()
	require.True(t, ok)
	assert.Equal(t, 2400.5, v)

	out, err := json.Marshal(claim.ModifiedValue)
	require.NoError(t, err)
	assert.JSONEq(t, `2400.5`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"type":"exercise","modified_value":"Intervals"}`), &claim))
	assert.Equal(t, "Intervals", claim.ModifiedValue.String())
	_, ok = claim.ModifiedValue.Float64()
	assert.False(t, ok)

	assert.Error(t, json.Unmarshal([]byte(`{"modified_value":{"a":1}}`), &claim))
}

func TestNewSuggestionRequest(t *testing.T) {
	req := aibackend.NewSuggestionRequest("user-001", training.TrajectoryNeutral, nil, []string{"sleep-under-6", "sore-legs"}, nil)
	assert.Equal(t, aibackend.StatusPerformanceNeutral, req.CurrentForm.TrainingStatus)
	assert.Empty(t, req.CurrentForm.InjuryStatus)
	assert.Equal(t, "sleep-under-6, sore-legs", req.CurrentForm.RecoveryStatus)
	assert.Nil(t, req.LatestTraining)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user_id": "user-001",
		"currentForm": {"training_status": "PERFORMANCE_NEUTRAL", "recovery_status": "sleep-under-6, sore-legs"}
	}`, string(out))

	assert.Equal(t, aibackend.StatusPerformanceDecreased, aibackend.StatusFor(training.TrajectoryDeclined))
	assert.Equal(t, aibackend.StatusPerformanceNeutral, aibackend.StatusFor("sideways"))
}
