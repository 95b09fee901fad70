package recovery_test

import (
	"testing"

	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/pkg"

	"github.com/stretchr/testify/assert"
)

func TestReadinessOf(t *testing.T) {
	tests := []struct {
		name     string
		entry    recovery.Entry
		expected recovery.Readiness
	}{
		{
			name: "all green on the thresholds",
			entry: recovery.Entry{
				Date:          "2025-08-12",
				SleepDuration: pkg.Float64Ptr(8),
				RHR:           pkg.Float64Ptr(60),
				HRV:           pkg.Float64Ptr(60),
				Fatigue:       pkg.Float64Ptr(3),
			},
			expected: recovery.Readiness{
				Date:    "2025-08-12",
				Sleep:   recovery.LightGreen,
				RHR:     recovery.LightGreen,
				HRV:     recovery.LightGreen,
				Fatigue: recovery.LightGreen,
				Overall: recovery.LightGreen,
			},
		},
		{
			name: "yellow band",
			entry: recovery.Entry{
				Date:          "2025-08-15",
				SleepDuration: pkg.Float64Ptr(7),
				RHR:           pkg.Float64Ptr(70),
				HRV:           pkg.Float64Ptr(40),
				Fatigue:       pkg.Float64Ptr(6),
			},
			expected: recovery.Readiness{
				Date:    "2025-08-15",
				Sleep:   recovery.LightYellow,
				RHR:     recovery.LightYellow,
				HRV:     recovery.LightYellow,
				Fatigue: recovery.LightYellow,
				Overall: recovery.LightYellow,
			},
		},
		{
			name: "one red metric makes the day red",
			entry: recovery.Entry{
				Date:          "2025-08-14",
				SleepDuration: pkg.Float64Ptr(8.5),
				RHR:           pkg.Float64Ptr(58),
				HRV:           pkg.Float64Ptr(38),
				Fatigue:       pkg.Float64Ptr(2),
			},
			expected: recovery.Readiness{
				Date:    "2025-08-14",
				Sleep:   recovery.LightGreen,
				RHR:     recovery.LightGreen,
				HRV:     recovery.LightRed,
				Fatigue: recovery.LightGreen,
				Overall: recovery.LightRed,
			},
		},
		{
			name: "missing metrics are unknown and ignored",
			entry: recovery.Entry{
				Date:    "2025-08-21",
				Fatigue: pkg.Float64Ptr(5),
			},
			expected: recovery.Readiness{
				Date:    "2025-08-21",
				Sleep:   recovery.LightUnknown,
				RHR:     recovery.LightUnknown,
				HRV:     recovery.LightUnknown,
				Fatigue: recovery.LightYellow,
				Overall: recovery.LightYellow,
			},
		},
		{
			name: "short night on a smartwatch day",
			entry: recovery.Entry{
				Date:          "2025-08-19",
				SleepDuration: pkg.Float64Ptr(7.9),
				RHR:           pkg.Float64Ptr(57),
				HRV:           pkg.Float64Ptr(66),
				Fatigue:       pkg.Float64Ptr(2),
				Source:        "Smartwatch Data",
			},
			expected: recovery.Readiness{
				Date:    "2025-08-19",
				Sleep:   recovery.LightYellow,
				RHR:     recovery.LightGreen,
				HRV:     recovery.LightGreen,
				Fatigue: recovery.LightGreen,
				Overall: recovery.LightYellow,
			},
		},
		{
			name:  "nothing known",
			entry: recovery.Entry{Date: "2025-08-22"},
			expected: recovery.Readiness{
				Date:    "2025-08-22",
				Sleep:   recovery.LightUnknown,
				RHR:     recovery.LightUnknown,
				HRV:     recovery.LightUnknown,
				Fatigue: recovery.LightUnknown,
				Overall: recovery.LightUnknown,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recovery.ReadinessOf(tt.entry))
		})
	}
}
