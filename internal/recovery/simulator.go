package recovery

import (
	"strings"

	"github.com/WeakCookie/fit-path-hackathon/internal/store"
	"github.com/WeakCookie/fit-path-hackathon/pkg"

	log "github.com/sirupsen/logrus"
)

// injury tags
const (
	TagKneeHurt   = "knee-hurt"
	TagBreakAnkle = "break-ankle"
)

// recovery factor tags
const (
	TagSleepUnder6 = "sleep-under-6"
	TagSoreLegs    = "sore-legs"
)

const SimulationSource = "Simulation"

const (
	shortSleepCeiling = 5.9
	shortSleepMin     = 0.5
	shortSleepMax     = 5.99
	shortSleepJitter  = 0.1 // +-5%

	ambientSleepJitter = 0.6 // +-0.3h
	sleepMin           = 3.0
	sleepMax           = 12.0

	injuryLoad     = 1.0
	shortSleepLoad = 1.0

	rhrPerLoad = 4.0
	rhrJitter  = 2.0 // +-1 bpm
	rhrMin     = 40.0
	rhrMax     = 100.0

	hrvPerLoad = 8.0
	hrvJitter  = 4.0 // +-2 ms
	hrvMin     = 20.0
	hrvMax     = 100.0

	fatiguePerLoad = 1.5
	fatigueJitter  = 1.0 // +-0.5
	fatigueMin     = 1.0
	fatigueMax     = 10.0
)

// RandSource is the random source of the simulator; *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type DateSource interface {
	NowISODate() string
}

// Simulator synthesizes the next recovery day from the most recent one,
// driven by the selected injury and recovery factor tags.
type Simulator struct {
	rnd   RandSource
	today DateSource
}

func NewSimulator(rnd RandSource, today DateSource) *Simulator {
	return &Simulator{
		rnd:   rnd,
		today: today,
	}
}

// Run simulates the day after the most recent entry (by date) and returns a
// new slice with the simulated entry appended. An empty history is returned unchanged.
func (s *Simulator) Run(history []Entry, injuries, recoveries []string) []Entry {
	latest, ok := store.LatestOf(history)
	if !ok {
		log.Debugln("recovery simulation: empty history, nothing to simulate")
		return history
	}

	simulated := s.Simulate(latest, injuries, recoveries)
	newHistory := make([]Entry, 0, len(history)+1)
	newHistory = append(newHistory, history...)
	return append(newHistory, simulated)
}

// Simulate applies the selected tags to a single entry. Tag sets that were
// not selected are cleared; absent numeric fields stay absent.
func (s *Simulator) Simulate(latest Entry, injuries, recoveries []string) Entry {
	injuries = uniqueTags(injuries)
	shortSleep := hasTag(recoveries, TagSleepUnder6)
	soreLegs := hasTag(recoveries, TagSoreLegs)

	simulated := latest.Clone()
	simulated.Date = s.today.NowISODate()
	simulated.Source = SimulationSource

	switch {
	case shortSleep:
		sleep := shortSleepCeiling
		if latest.SleepDuration != nil {
			sleep = min(*latest.SleepDuration, shortSleepCeiling)
		}
		sleep *= 1 + s.jitter(shortSleepJitter)
		simulated.SleepDuration = roundedPtr(pkg.Clamp(sleep, shortSleepMin, shortSleepMax), 2)
	case latest.SleepDuration != nil:
		sleep := *latest.SleepDuration + s.jitter(ambientSleepJitter)
		simulated.SleepDuration = roundedPtr(pkg.Clamp(sleep, sleepMin, sleepMax), 2)
	}

	if soreLegs {
		simulated.Soreness = uniqueTags(append(simulated.Soreness, "legs"))
	} else {
		simulated.Soreness = []string{}
	}

	simulated.Injury = injuries
	if simulated.Injury == nil {
		simulated.Injury = []string{}
	}

	load := float64(len(injuries)) * injuryLoad
	if shortSleep {
		load += shortSleepLoad
	}

	if latest.RHR != nil {
		rhr := *latest.RHR + load*rhrPerLoad + s.jitter(rhrJitter)
		simulated.RHR = roundedPtr(pkg.Clamp(rhr, rhrMin, rhrMax), 0)
	}
	if latest.HRV != nil {
		hrv := *latest.HRV - load*hrvPerLoad + s.jitter(hrvJitter)
		simulated.HRV = roundedPtr(pkg.Clamp(hrv, hrvMin, hrvMax), 0)
	}
	if latest.Fatigue != nil {
		fatigue := *latest.Fatigue + load*fatiguePerLoad + s.jitter(fatigueJitter)
		simulated.Fatigue = roundedPtr(pkg.Clamp(fatigue, fatigueMin, fatigueMax), 0)
	}

	log.Tracef("recovery simulation %s: injuries %v, recoveries %v, load %.1f", simulated.Date, injuries, recoveries, load)
	return simulated
}

// jitter returns a value uniformly drawn in [-width/2, width/2)
func (s *Simulator) jitter(width float64) float64 {
	return (s.rnd.Float64() - 0.5) * width
}

func roundedPtr(v float64, places int) *float64 {
	return pkg.Float64Ptr(pkg.RoundHalfUp(v, places))
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

func uniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	unique := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	return unique
}
