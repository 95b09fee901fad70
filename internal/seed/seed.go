// Package seed holds the demo data the stores start from and return to on reset.
package seed

import (
	"github.com/WeakCookie/fit-path-hackathon/internal/confidence"
	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"
	"github.com/WeakCookie/fit-path-hackathon/pkg"
)

// StartDate is the first simulated day, the day after the last seeded recovery entry.
const StartDate = "2025-08-20"

const smartwatchSource = "Smartwatch Data"

func Training() []training.LogEntry {
	return []training.LogEntry{
		{
			Date:                 "2025-08-01",
			Exercise:             "Long Run",
			Duration:             pkg.Float64Ptr(45 * 60),
			Distance:             pkg.Float64Ptr(8),
			Pace:                 pkg.Float64Ptr(300),
			Cadence:              pkg.Float64Ptr(168),
			LactateThresholdPace: pkg.Float64Ptr(270),
			AerobicDecoupling:    pkg.Float64Ptr(9.8),
			OneMinHRR:            pkg.Float64Ptr(26),
			EfficiencyFactor:     pkg.Float64Ptr(0.65),
		},
	}
}

func Recovery() []recovery.Entry {
	return []recovery.Entry{
		recoveryDay("2025-08-10", 8.1, 58, 65, 2, nil, []string{"dislocate left shoulder"}),
		recoveryDay("2025-08-11", 7.8, 59, 62, 2, nil, []string{"dislocate left shoulder feel a bit better, but still hard to move"}),
		recoveryDay("2025-08-12", 8.3, 57, 68, 1, nil, nil),
		recoveryDay("2025-08-13", 7.5, 62, 45, 7, []string{"legs", "glutes"}, nil),
		recoveryDay("2025-08-14", 7.0, 65, 38, 9, []string{"legs", "back"}, nil),
		recoveryDay("2025-08-15", 8.5, 63, 48, 7, []string{"legs"}, nil),
		recoveryDay("2025-08-16", 8.6, 60, 55, 5, nil, nil),
		recoveryDay("2025-08-17", 8.0, 59, 60, 3, nil, nil),
		recoveryDay("2025-08-18", 8.2, 58, 63, 2, nil, nil),
		recoveryDay("2025-08-19", 7.9, 57, 66, 2, nil, nil),
	}
}

// Confidence gives every research paper its starting confidence, dated before the first simulated day.
func Confidence() []confidence.Point {
	return []confidence.Point{
		{Date: "2025-08-19", PaperID: "1", Score: 0.85},
		{Date: "2025-08-19", PaperID: "2", Score: 0.78},
		{Date: "2025-08-19", PaperID: "3", Score: 0.82},
	}
}

func recoveryDay(date string, sleep, rhr, hrv, fatigue float64, soreness, injury []string) recovery.Entry {
	if soreness == nil {
		soreness = []string{}
	}
	return recovery.Entry{
		Date:          date,
		SleepDuration: pkg.Float64Ptr(sleep),
		RHR:           pkg.Float64Ptr(rhr),
		HRV:           pkg.Float64Ptr(hrv),
		Soreness:      soreness,
		Fatigue:       pkg.Float64Ptr(fatigue),
		Source:        smartwatchSource,
		Injury:        injury,
	}
}
