package engine

import (
	"context"
	"fmt"

	"github.com/WeakCookie/fit-path-hackathon/internal/aibackend"
	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/metrics"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/tracing"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// PredictInput is everything known about the day before it is simulated.
type PredictInput struct {
	Date       string
	PaperIDs   []string
	Latest     training.LogEntry
	Trajectory training.Trajectory
	Injuries   []string
	Recoveries []string
}

// Predictor produces the training rows the research papers expect for the day.
type Predictor interface {
	Predict(ctx context.Context, in PredictInput) ([]prediction.Prediction, error)
}

// MockPredictor expects every paper to predict a steady day: a neutral
// simulation of the latest actual row.
type MockPredictor struct {
	simulator         *training.Simulator
	variabilityFactor float64
}

func NewMockPredictor(simulator *training.Simulator, variabilityFactor float64) *MockPredictor {
	return &MockPredictor{
		simulator:         simulator,
		variabilityFactor: variabilityFactor,
	}
}

func (p *MockPredictor) Predict(ctx context.Context, in PredictInput) ([]prediction.Prediction, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "predictor.mock")
	defer span.End()

	predictions := make([]prediction.Prediction, 0, len(in.PaperIDs))
	for _, paperID := range in.PaperIDs {
		row := p.simulator.Simulate(in.Latest, training.SimulationParams{
			Trajectory:        training.TrajectoryNeutral,
			VariabilityFactor: p.variabilityFactor,
		})
		row.Date = in.Date
		predictions = append(predictions, prediction.Prediction{
			Date:    in.Date,
			PaperID: paperID,
			Source:  prediction.SourceMock,
			Row:     row,
		})
	}
	span.SetAttributes(attribute.Int("predictions", len(predictions)))
	return predictions, nil
}

type suggestionClient interface {
	DailyTrainingSuggestion(ctx context.Context, req aibackend.SuggestionRequest) (*aibackend.SuggestionResponse, error)
}

// AIPredictor asks the AI server for the suggestion of a research paper and
// applies the claimed fields onto the latest actual row.
type AIPredictor struct {
	client         suggestionClient
	userID         string
	metricsManager *metrics.Manager
}

func NewAIPredictor(client suggestionClient, userID string, metricsManager *metrics.Manager) *AIPredictor {
	return &AIPredictor{
		client:         client,
		userID:         userID,
		metricsManager: metricsManager,
	}
}

func (p *AIPredictor) Predict(ctx context.Context, in PredictInput) (_ []prediction.Prediction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "predictor.ai")
	defer tracing.EndSpanWithErrCheck(span, &err)

	latest := in.Latest
	req := aibackend.NewSuggestionRequest(p.userID, in.Trajectory, in.Injuries, in.Recoveries, &latest)
	resp, err := p.client.DailyTrainingSuggestion(ctx, req)
	if err != nil {
		p.countCall("error")
		return nil, fmt.Errorf("daily training suggestion: %w", err)
	}
	p.countCall("ok")

	pred := aibackend.MapSuggestion(*resp)
	if pred.Date != in.Date {
		log.Debugf("ai suggestion dated %s, used for %s", pred.Date, in.Date)
	}
	pred.Date = in.Date
	pred.Row = pred.Apply(in.Latest)
	span.SetAttributes(attribute.String("paper.id", pred.PaperID))

	return []prediction.Prediction{pred}, nil
}

func (p *AIPredictor) countCall(result string) {
	if p.metricsManager != nil {
		p.metricsManager.CounterAIBackendCalls.WithLabelValues(result).Inc()
	}
}
