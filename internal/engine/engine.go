package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/WeakCookie/fit-path-hackathon/internal/clock"
	"github.com/WeakCookie/fit-path-hackathon/internal/confidence"
	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"
	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/internal/store"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/metrics"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/tracing"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidTrajectory = errors.New("invalid trajectory")
	ErrAIBackendDisabled = errors.New("ai backend not configured")
)

// RandSource feeds both the training and the recovery simulators.
type RandSource interface {
	Float64() float64
}

type healthChecker interface {
	TestConnection(ctx context.Context) error
}

type Settings struct {
	// PaperIDs scored every round; when empty, the papers of the confidence seed are used
	PaperIDs          []string
	Weights           training.Weights
	VariabilityFactor float64
	SimpleMode        bool
	// StartDate is where the clock goes on reset; empty means the wall clock date
	StartDate string
}

type Params struct {
	Clock       *clock.Clock
	Training    *store.Store[training.LogEntry]
	Recovery    *recovery.Store
	Confidence  *confidence.Store
	Predictions *prediction.Store
	Rand        RandSource
	// Predictor defaults to a MockPredictor
	Predictor Predictor
	// AIHealth is optional, used to report the AI server status
	AIHealth       healthChecker
	MetricsManager *metrics.Manager
	Settings       Settings
}

type SimulationRequest struct {
	Trajectory        training.Trajectory
	VariabilityFactor *float64
	SimpleMode        *bool
	Injuries          []string
	Recoveries        []string
}

type PaperScore struct {
	PaperID string   `json:"paperId"`
	Delta   float64  `json:"delta"`
	Score   float64  `json:"score"`
	Badges  []string `json:"badges"`
}

type SimulationResult struct {
	Date        string                  `json:"date"`
	NextDate    string                  `json:"nextDate"`
	Training    *training.LogEntry      `json:"training,omitempty"`
	Recovery    *recovery.Entry         `json:"recovery,omitempty"`
	Predictions []prediction.Prediction `json:"predictions"`
	Scores      []PaperScore            `json:"scores"`
}

type PaperConfidence struct {
	PaperID string             `json:"paperId"`
	Latest  *confidence.Point  `json:"latest"`
	Badges  []string           `json:"badges"`
	History []confidence.Point `json:"history"`
}

// Engine runs the simulation rounds over the stores and keeps the clock.
type Engine struct {
	// one simulation round, reset or manual edit at a time
	mu sync.Mutex

	clock       *clock.Clock
	training    *store.Store[training.LogEntry]
	recovery    *recovery.Store
	confidence  *confidence.Store
	predictions *prediction.Store

	trainingSim *training.Simulator
	recoverySim *recovery.Simulator
	predictor   Predictor
	aiHealth    healthChecker

	metricsManager *metrics.Manager
	settings       Settings
	unsubscribe    func()
}

func New(params Params) *Engine {
	settings := params.Settings
	if settings.VariabilityFactor <= 0 {
		settings.VariabilityFactor = training.DefaultVariabilityFactor
	}
	if settings.Weights.Sum() == 0 {
		settings.Weights = training.BalancedWeights
	}
	if len(settings.PaperIDs) == 0 {
		settings.PaperIDs = params.Confidence.Papers()
	}

	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	trainingSim := training.NewSimulator(params.Rand, params.Clock)
	predictor := params.Predictor
	if predictor == nil {
		predictor = NewMockPredictor(trainingSim, settings.VariabilityFactor)
	}

	e := &Engine{
		clock:          params.Clock,
		training:       params.Training,
		recovery:       params.Recovery,
		confidence:     params.Confidence,
		predictions:    params.Predictions,
		trainingSim:    trainingSim,
		recoverySim:    recovery.NewSimulator(params.Rand, params.Clock),
		predictor:      predictor,
		aiHealth:       params.AIHealth,
		metricsManager: metricsManager,
		settings:       settings,
	}

	e.unsubscribe = e.clock.Subscribe(func() {
		log.Debugf("simulation clock moved to %s", e.clock.NowISODate())
	})
	e.refreshConfidenceGauges()

	return e
}

// Close detaches the engine from the clock.
func (e *Engine) Close() {
	e.unsubscribe()
}

// RunSimulation simulates the current day: the papers predict it from the
// latest training, then the actual training and recovery days are simulated,
// each prediction is scored against the actual training and the score is
// added to the confidence of its paper. The clock then moves to the next day.
// A predictor error aborts the round before anything is stored.
func (e *Engine) RunSimulation(ctx context.Context, req SimulationRequest) (_ *SimulationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.runSimulation")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if !req.Trajectory.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTrajectory, req.Trajectory)
	}

	params := training.SimulationParams{
		Trajectory:        req.Trajectory,
		VariabilityFactor: e.settings.VariabilityFactor,
		SimpleMode:        e.settings.SimpleMode,
	}
	if req.VariabilityFactor != nil {
		params.VariabilityFactor = *req.VariabilityFactor
	}
	if req.SimpleMode != nil {
		params.SimpleMode = *req.SimpleMode
	}

	span.SetAttributes(
		attribute.String("trajectory", string(req.Trajectory)),
		attribute.Float64("variability", params.VariabilityFactor),
		attribute.Bool("simple-mode", params.SimpleMode),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.clock.NowISODate()
	result := &SimulationResult{
		Date:        today,
		Predictions: []prediction.Prediction{},
		Scores:      []PaperScore{},
	}

	trainingHistory := e.training.GetAll()
	latestTraining, hasTraining := store.LatestOf(trainingHistory)

	if hasTraining {
		predictions, err := e.predictor.Predict(ctx, PredictInput{
			Date:       today,
			PaperIDs:   e.settings.PaperIDs,
			Latest:     latestTraining,
			Trajectory: req.Trajectory,
			Injuries:   req.Injuries,
			Recoveries: req.Recoveries,
		})
		if err != nil {
			e.metricsManager.CounterSimulations.WithLabelValues(string(req.Trajectory), "error").Inc()
			return nil, fmt.Errorf("predict %s: %w", today, err)
		}
		result.Predictions = predictions
	} else {
		log.Warnf("simulation %s: no training history, nothing to predict", today)
	}

	newTrainingHistory := e.trainingSim.Run(trainingHistory, params)
	if len(newTrainingHistory) > len(trainingHistory) {
		simulated := newTrainingHistory[len(newTrainingHistory)-1]
		e.training.SetAll(newTrainingHistory)
		result.Training = &simulated
	}

	recoveryHistory := e.recovery.GetAll()
	newRecoveryHistory := e.recoverySim.Run(recoveryHistory, req.Injuries, req.Recoveries)
	if len(newRecoveryHistory) > len(recoveryHistory) {
		simulated := newRecoveryHistory[len(newRecoveryHistory)-1]
		e.recovery.SetAll(newRecoveryHistory)
		result.Recovery = &simulated
	}

	for _, p := range result.Predictions {
		e.predictions.Add(p)
		if result.Training == nil {
			continue
		}

		delta := training.Score(*result.Training, p.Row, e.settings.Weights)
		point := e.confidence.Accumulate(today, p.PaperID, delta)
		result.Scores = append(result.Scores, PaperScore{
			PaperID: p.PaperID,
			Delta:   delta,
			Score:   point.Score,
			Badges:  confidence.Badges(&point),
		})

		e.metricsManager.HistogramScore.WithLabelValues(p.PaperID).Observe(delta)
		e.metricsManager.GaugeConfidence.WithLabelValues(p.PaperID).Set(point.Score)
		log.Debugf("simulation %s: paper %s scored %.2f, confidence %.2f", today, p.PaperID, delta, point.Score)
	}

	e.clock.AdvanceDay()
	result.NextDate = e.clock.NowISODate()

	e.metricsManager.CounterSimulations.WithLabelValues(string(req.Trajectory), "ok").Inc()
	log.Infof("simulation %s [%s] done, %d papers scored, next day %s", today, req.Trajectory, len(result.Scores), result.NextDate)

	return result, nil
}

// Reset restores all stores to their seed data and moves the clock back to the start date.
func (e *Engine) Reset(ctx context.Context) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.reset")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.training.Reset()
	e.recovery.Reset()
	e.confidence.Reset()
	e.predictions.Reset()
	e.resetClock()
	e.refreshConfidenceGauges()

	log.Infof("engine reset, today is %s", e.clock.NowISODate())
}

func (e *Engine) TrainingLog() []training.LogEntry {
	return e.training.GetAll()
}

func (e *Engine) AddTraining(entry training.LogEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.training.Add(entry)
}

func (e *Engine) RecoveryLog() []recovery.Entry {
	return e.recovery.GetAll()
}

func (e *Engine) RecoveryByDate(date string) (recovery.Entry, bool) {
	return e.recovery.GetByDate(date)
}

func (e *Engine) UpdateRecovery(date string, patch recovery.Partial) recovery.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recovery.UpdateByDate(date, patch)
}

func (e *Engine) ConfidenceScores() []confidence.Point {
	return e.confidence.GetAll()
}

func (e *Engine) PaperConfidence(paperID string) PaperConfidence {
	latest := e.confidence.LatestScoreForPaper(paperID)
	history := e.confidence.ForPaper(paperID)
	if history == nil {
		history = []confidence.Point{}
	}
	return PaperConfidence{
		PaperID: paperID,
		Latest:  latest,
		Badges:  confidence.Badges(latest),
		History: history,
	}
}

func (e *Engine) Predictions() []prediction.Prediction {
	return e.predictions.GetAll()
}

func (e *Engine) Today() string {
	return e.clock.NowISODate()
}

func (e *Engine) SetToday(date string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.SetFromISODate(date)
}

func (e *Engine) AdvanceDay() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock.AdvanceDay()
	return e.clock.NowISODate()
}

func (e *Engine) ResetClock() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetClock()
	return e.clock.NowISODate()
}

func (e *Engine) AIHealth(ctx context.Context) error {
	if e.aiHealth == nil {
		return ErrAIBackendDisabled
	}
	return e.aiHealth.TestConnection(ctx)
}

func (e *Engine) resetClock() {
	if e.settings.StartDate == "" {
		e.clock.Reset()
		return
	}
	if err := e.clock.SetFromISODate(e.settings.StartDate); err != nil {
		log.Errorf("reset clock to start date: %s, using the wall clock", err)
		e.clock.Reset()
	}
}

func (e *Engine) refreshConfidenceGauges() {
	e.metricsManager.GaugeConfidence.Reset()
	for _, paperID := range e.settings.PaperIDs {
		if latest := e.confidence.LatestScoreForPaper(paperID); latest != nil {
			e.metricsManager.GaugeConfidence.WithLabelValues(paperID).Set(latest.Score)
		}
	}
}
