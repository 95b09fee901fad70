package seed_test

import (
	"testing"

	"github.com/WeakCookie/fit-path-hackathon/internal/clock"
	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/internal/seed"
	"github.com/WeakCookie/fit-path-hackathon/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDatesAreValid(t *testing.T) {
	for _, e := range seed.Training() {
		_, err := clock.ParseISODate(e.Date)
		assert.NoError(t, err, e.Date)
	}
	for _, e := range seed.Recovery() {
		_, err := clock.ParseISODate(e.Date)
		assert.NoError(t, err, e.Date)
	}
	for _, p := range seed.Confidence() {
		assert.Less(t, p.Date, seed.StartDate)
	}
}

func TestSeedRecoveryEndsBeforeStartDate(t *testing.T) {
	latest, ok := store.LatestOf(seed.Recovery())
	require.True(t, ok)
	assert.Equal(t, "2025-08-19", latest.Date)

	start, err := clock.ParseISODate(seed.StartDate)
	require.NoError(t, err)
	assert.Equal(t, latest.Date, start.AddDate(0, 0, -1).Format(clock.ISODateLayout))
}

func TestSeedReturnsFreshData(t *testing.T) {
	first := seed.Recovery()
	*first[0].SleepDuration = 1
	first[3].Soreness[0] = "arms"

	second := seed.Recovery()
	assert.Equal(t, 8.1, *second[0].SleepDuration)
	assert.Equal(t, "legs", second[3].Soreness[0])

	assert.Equal(t, recovery.LightGreen, recovery.ReadinessOf(second[0]).Sleep)
	assert.Equal(t, []string{"1", "2", "3"}, confidencePapers())
}

func confidencePapers() []string {
	var ids []string
	for _, p := range seed.Confidence() {
		ids = append(ids, p.PaperID)
	}
	return ids
}
