package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/WeakCookie/fit-path-hackathon/internal/clock"
	"github.com/WeakCookie/fit-path-hackathon/internal/confidence"
	"github.com/WeakCookie/fit-path-hackathon/internal/middleware"
	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"
	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/metrics"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/tracing"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"
	"github.com/WeakCookie/fit-path-hackathon/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=engine_test

type service interface {
	RunSimulation(ctx context.Context, req SimulationRequest) (*SimulationResult, error)
	Reset(ctx context.Context)
	TrainingLog() []training.LogEntry
	AddTraining(entry training.LogEntry)
	RecoveryLog() []recovery.Entry
	RecoveryByDate(date string) (recovery.Entry, bool)
	UpdateRecovery(date string, patch recovery.Partial) recovery.Entry
	ConfidenceScores() []confidence.Point
	PaperConfidence(paperID string) PaperConfidence
	Predictions() []prediction.Prediction
	Today() string
	SetToday(date string) error
	AdvanceDay() string
	ResetClock() string
	AIHealth(ctx context.Context) error
}

// MaxVariabilityFactor bounds the per-request factor: from 2 on the jitter
// 1+(r-0.5)*f can reach zero and flip the sign of a metric.
const MaxVariabilityFactor = 2.0

type SimulateRequest struct {
	Trajectory        string   `json:"trajectory"`
	VariabilityFactor *float64 `json:"variabilityFactor,omitempty"`
	SimpleMode        *bool    `json:"simpleMode,omitempty"`
	Injuries          []string `json:"injuries"`
	Recoveries        []string `json:"recoveries"`
}

type ClockResponse struct {
	Date string `json:"date"`
}

type AIHealthResponse struct {
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	simulationsPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/training", handler.HandleTrainingLog).Methods("GET", "OPTIONS").Name("training-log")
	mainRouter.HandleFunc("/training", handler.HandleAddTraining).Methods("POST").Name("training-add")

	mainRouter.HandleFunc("/recovery", handler.HandleRecoveryLog).Methods("GET", "OPTIONS").Name("recovery-log")
	mainRouter.HandleFunc("/recovery/{date}", handler.HandleRecoveryByDate).Methods("GET").Name("recovery-get")
	mainRouter.HandleFunc("/recovery/{date}", handler.HandleUpdateRecovery).Methods("PUT", "OPTIONS").Name("recovery-update")
	mainRouter.HandleFunc("/recovery/{date}/readiness", handler.HandleReadiness).Methods("GET").Name("recovery-readiness")

	mainRouter.HandleFunc("/confidence", handler.HandleConfidenceScores).Methods("GET", "OPTIONS").Name("confidence")
	mainRouter.HandleFunc("/confidence/paper/{id}", handler.HandlePaperConfidence).Methods("GET").Name("confidence-paper")
	mainRouter.HandleFunc("/predictions", handler.HandlePredictions).Methods("GET", "OPTIONS").Name("predictions")

	mainRouter.HandleFunc("/clock", handler.HandleGetClock).Methods("GET", "OPTIONS").Name("clock")
	mainRouter.HandleFunc("/clock", handler.HandleSetClock).Methods("PUT").Name("clock-set")
	mainRouter.HandleFunc("/clock/advance", handler.HandleAdvanceClock).Methods("POST", "OPTIONS").Name("clock-advance")
	mainRouter.HandleFunc("/clock/reset", handler.HandleResetClock).Methods("POST", "OPTIONS").Name("clock-reset")

	mainRouter.HandleFunc("/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("reset")
	mainRouter.HandleFunc("/ai/health", handler.HandleAIHealth).Methods("GET").Name("ai-health")

	// each round may call the AI server
	rateLimit := middleware.RateLimit(rateLimiter, "simulate", simulationsPerMin, metricsManager)
	mainRouter.Handle("/simulate", rateLimit(http.HandlerFunc(handler.HandleSimulate))).Methods("POST", "OPTIONS").Name("simulate")
}

func (handler *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.simulate")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var simReq SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&simReq); err != nil {
		log.Errorf("simulate, unmarshal json params: %s", err)
		http.Error(w, "invalid simulation request", http.StatusBadRequest)
		return
	}

	trajectory, err := training.ParseTrajectory(simReq.Trajectory)
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}
	if f := simReq.VariabilityFactor; f != nil && (*f < 0 || *f >= MaxVariabilityFactor) {
		http.Error(w, fmt.Sprintf("error, variability factor must be in [0, %g)", MaxVariabilityFactor), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("trajectory", string(trajectory)))

	result, err := handler.service.RunSimulation(ctx, SimulationRequest{
		Trajectory:        trajectory,
		VariabilityFactor: simReq.VariabilityFactor,
		SimpleMode:        simReq.SimpleMode,
		Injuries:          simReq.Injuries,
		Recoveries:        simReq.Recoveries,
	})
	if err != nil {
		log.Errorf("run simulation [%s]: %s", trajectory, err)
		if errors.Is(err, ErrInvalidTrajectory) {
			http.Error(w, "invalid trajectory", http.StatusBadRequest)
			return
		}
		http.Error(w, "simulation failed", http.StatusBadGateway)
		return
	}

	handler.writeJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.reset")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	handler.service.Reset(ctx)
	handler.writeJSON(w, ClockResponse{Date: handler.service.Today()}, http.StatusOK)
}

func (handler *Handler) HandleTrainingLog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.trainingLog")
	defer span.End()

	handler.writeJSON(w, handler.service.TrainingLog(), http.StatusOK)
}

func (handler *Handler) HandleAddTraining(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.addTraining")
	defer span.End()

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry training.LogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("add training, unmarshal json params: %s", err)
		http.Error(w, "add training failed", http.StatusBadRequest)
		return
	}
	if _, err := clock.ParseISODate(entry.Date); err != nil {
		http.Error(w, "error, invalid training date", http.StatusBadRequest)
		return
	}

	handler.service.AddTraining(entry)
	log.Debugf("training added for %s", entry.Date)

	handler.writeJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleRecoveryLog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.recoveryLog")
	defer span.End()

	handler.writeJSON(w, handler.service.RecoveryLog(), http.StatusOK)
}

func (handler *Handler) HandleRecoveryByDate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.recoveryByDate")
	defer span.End()

	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	entry, found := handler.service.RecoveryByDate(date)
	if !found {
		http.Error(w, "recovery entry not found", http.StatusNotFound)
		return
	}

	handler.writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleUpdateRecovery(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.updateRecovery")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	var patch recovery.Partial
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update recovery, unmarshal json params: %s", err)
		http.Error(w, "update recovery failed", http.StatusBadRequest)
		return
	}

	updated := handler.service.UpdateRecovery(date, patch)
	handler.writeJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.readiness")
	defer span.End()

	date, ok := dateVar(w, r)
	if !ok {
		return
	}

	entry, found := handler.service.RecoveryByDate(date)
	if !found {
		http.Error(w, "recovery entry not found", http.StatusNotFound)
		return
	}

	handler.writeJSON(w, recovery.ReadinessOf(entry), http.StatusOK)
}

func (handler *Handler) HandleConfidenceScores(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.confidence")
	defer span.End()

	handler.writeJSON(w, handler.service.ConfidenceScores(), http.StatusOK)
}

func (handler *Handler) HandlePaperConfidence(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.paperConfidence")
	defer span.End()

	paperID := mux.Vars(r)["id"]
	if paperID == "" {
		http.Error(w, "error, paper id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("paper.id", paperID))

	handler.writeJSON(w, handler.service.PaperConfidence(paperID), http.StatusOK)
}

func (handler *Handler) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.predictions")
	defer span.End()

	handler.writeJSON(w, handler.service.Predictions(), http.StatusOK)
}

func (handler *Handler) HandleGetClock(w http.ResponseWriter, _ *http.Request) {
	handler.writeJSON(w, ClockResponse{Date: handler.service.Today()}, http.StatusOK)
}

func (handler *Handler) HandleSetClock(w http.ResponseWriter, r *http.Request) {
	var clockReq ClockResponse
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		log.Errorf("set clock, unmarshal json params: %s", err)
		http.Error(w, "set clock failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetToday(clockReq.Date); err != nil {
		log.Debugf("set clock to [%s]: %s", clockReq.Date, err)
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	handler.writeJSON(w, ClockResponse{Date: handler.service.Today()}, http.StatusOK)
}

func (handler *Handler) HandleAdvanceClock(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}
	handler.writeJSON(w, ClockResponse{Date: handler.service.AdvanceDay()}, http.StatusOK)
}

func (handler *Handler) HandleResetClock(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}
	handler.writeJSON(w, ClockResponse{Date: handler.service.ResetClock()}, http.StatusOK)
}

func (handler *Handler) HandleAIHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.engine.aiHealth")
	defer span.End()

	resp := AIHealthResponse{Reachable: true}
	status := http.StatusOK
	if err := handler.service.AIHealth(ctx); err != nil {
		log.Warnf("ai server health check: %s", err)
		resp = AIHealthResponse{Error: err.Error()}
		status = http.StatusServiceUnavailable
	}

	handler.writeJSON(w, resp, status)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}

func dateVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := mux.Vars(r)["date"]
	if _, err := clock.ParseISODate(date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return "", false
	}
	return date, true
}
