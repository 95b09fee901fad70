package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(families []*promcl.MetricFamily, name string) *promcl.MetricFamily {
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestManager_ScoreHistogram(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.HistogramScore.WithLabelValues("1").Observe(1)
	m.HistogramScore.WithLabelValues("1").Observe(0.62)
	m.HistogramScore.WithLabelValues("2").Observe(-0.4)

	gathered, err := reg.Gather()
	require.NoError(t, err)

	scores := findFamily(gathered, "fitpath_test_server_prediction_score")
	require.NotNil(t, scores)
	assert.Equal(t, promcl.MetricType_HISTOGRAM, scores.GetType())
	require.Len(t, scores.Metric, 2)

	for _, metric := range scores.Metric {
		require.Len(t, metric.Label, 1)
		assert.Equal(t, "paper_id", metric.Label[0].GetName())
		switch metric.Label[0].GetValue() {
		case "1":
			assert.Equal(t, uint64(2), metric.Histogram.GetSampleCount())
			assert.InDelta(t, 1.62, metric.Histogram.GetSampleSum(), 1e-9)
		case "2":
			assert.Equal(t, uint64(1), metric.Histogram.GetSampleCount())
		default:
			t.Fatalf("unexpected paper label: %s", metric.Label[0].GetValue())
		}
	}
}

func TestManager_ConfidenceGauge(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.GaugeConfidence.WithLabelValues("1").Set(0.85)
	m.GaugeConfidence.WithLabelValues("1").Set(1.85)
	m.GaugeConfidence.WithLabelValues("3").Set(0.82)

	assert.Equal(t, 1.85, testutil.ToFloat64(m.GaugeConfidence.WithLabelValues("1")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.GaugeConfidence))

	gathered, err := reg.Gather()
	require.NoError(t, err)
	assert.NotNil(t, findFamily(gathered, "fitpath_test_server_paper_confidence"))
	// vectors without observations are not exported
	assert.Nil(t, findFamily(gathered, "fitpath_test_server_simulations"))
}

func TestNewRegistry(t *testing.T) {
	reg, registerer := NewRegistry(RegistryOptions{
		Runtime:     true,
		BuildInfo:   true,
		ConstLabels: map[string]string{"env": "development"},
	})
	m := NewManager("fitpath", "engine", registerer)
	m.GaugeLifeSignal.Set(1)

	gathered, err := reg.Gather()
	require.NoError(t, err)
	assert.NotNil(t, findFamily(gathered, "go_goroutines"))
	assert.NotNil(t, findFamily(gathered, "go_build_info"))

	lifeSignal := findFamily(gathered, "fitpath_engine_life_signal")
	require.NotNil(t, lifeSignal)
	require.Len(t, lifeSignal.Metric, 1)
	require.Len(t, lifeSignal.Metric[0].Label, 1)
	assert.Equal(t, "env", lifeSignal.Metric[0].Label[0].GetName())
	assert.Equal(t, "development", lifeSignal.Metric[0].Label[0].GetValue())
}

func TestNewRegistry_Bare(t *testing.T) {
	reg, registerer := NewRegistry(RegistryOptions{})
	assert.Same(t, reg, registerer)

	NewManager("fitpath", "engine", registerer).GaugeLifeSignal.Set(0)

	gathered, err := reg.Gather()
	require.NoError(t, err)
	assert.NotNil(t, findFamily(gathered, "fitpath_engine_life_signal"))
	assert.NotNil(t, findFamily(gathered, "fitpath_engine_current_requests"))
	for _, f := range gathered {
		assert.True(t, strings.HasPrefix(f.GetName(), "fitpath_engine_"), f.GetName())
		assert.Empty(t, f.Metric[0].Label, f.GetName())
	}
	assert.Nil(t, findFamily(gathered, "go_goroutines"))
	assert.Nil(t, findFamily(gathered, "go_build_info"))
}
