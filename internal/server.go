package internal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/WeakCookie/fit-path-hackathon/internal/aibackend"
	"github.com/WeakCookie/fit-path-hackathon/internal/clock"
	"github.com/WeakCookie/fit-path-hackathon/internal/config"
	"github.com/WeakCookie/fit-path-hackathon/internal/confidence"
	"github.com/WeakCookie/fit-path-hackathon/internal/engine"
	"github.com/WeakCookie/fit-path-hackathon/internal/middleware"
	"github.com/WeakCookie/fit-path-hackathon/internal/prediction"
	"github.com/WeakCookie/fit-path-hackathon/internal/recovery"
	"github.com/WeakCookie/fit-path-hackathon/internal/seed"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/metrics"
	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/tracing"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"
	"github.com/WeakCookie/fit-path-hackathon/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	engine      *engine.Engine
	redisClient *redis.Client
	// nil when redis was unreachable at startup, /simulate is then not limited
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
	// PromRegistry defaults to a registry with the go, process and build info collectors
	PromRegistry *prometheus.Registry
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	weights, err := training.WeightPreset(cfg.WeightPreset)
	if err != nil {
		return nil, fmt.Errorf("weight preset: %w", err)
	}

	var (
		promRegistry = params.PromRegistry
		registerer   prometheus.Registerer
	)
	if promRegistry == nil {
		promRegistry, registerer = metrics.NewRegistry(metrics.RegistryOptions{
			Runtime:     true,
			BuildInfo:   true,
			ConstLabels: prometheus.Labels{"env": cfg.Environment},
		})
	} else {
		registerer = promRegistry
	}
	metricsManager := metrics.NewManager("fitpath", "engine", registerer)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook())

	var rateLimiter middleware.RequestRateLimiter
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s, simulations will not be rate limited", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
		rateLimiter = redis_rate.NewLimiter(rdb)
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitpath-engine")
	if err != nil {
		return nil, err
	}

	simClock := clock.New(time.Now)
	if cfg.StartDate != "" {
		if err := simClock.SetFromISODate(cfg.StartDate); err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
	}

	var (
		predictor engine.Predictor
		aiHealth  *aibackend.Client
	)
	if cfg.UseAIBackend {
		aiHealth = aibackend.NewClient(
			cfg.AIServerBaseURL,
			aibackend.NewHTTPClient(cfg.AIRequestTimeout.Duration),
			suggestionCache(cfg, rdb),
			cfg.SuggestionCacheTTL.Duration,
		)
		predictor = engine.NewAIPredictor(aiHealth, cfg.AIUserID, metricsManager)
		log.Infof("predictions from the AI server at %s", cfg.AIServerBaseURL)
	} else {
		log.Infoln("predictions from the mock predictor")
	}

	engineParams := engine.Params{
		Clock:          simClock,
		Training:       training.NewStore(seed.Training()),
		Recovery:       recovery.NewStore(seed.Recovery()),
		Confidence:     confidence.NewStore(seed.Confidence()),
		Predictions:    prediction.NewStore(nil),
		Rand:           newLockedRand(time.Now().UnixNano()),
		Predictor:      predictor,
		MetricsManager: metricsManager,
		Settings: engine.Settings{
			PaperIDs:          cfg.PaperIDs,
			Weights:           weights,
			VariabilityFactor: cfg.VariabilityFactor,
			SimpleMode:        cfg.SimpleMode,
			StartDate:         cfg.StartDate,
		},
	}
	// a nil *aibackend.Client must not end up in the interface
	if aiHealth != nil {
		engineParams.AIHealth = aiHealth
	}

	return &Server{
		config:         cfg,
		engine:         engine.New(engineParams),
		redisClient:    rdb,
		rateLimiter:    rateLimiter,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func suggestionCache(cfg *config.Config, rdb *redis.Client) aibackend.SuggestionCache {
	switch cfg.SuggestionCache {
	case config.SuggestionCacheRedis:
		return aibackend.NewRedisCache(rdb)
	case config.SuggestionCacheMemory:
		return aibackend.NewMemoryCache(cfg.MemoryCacheSizeMB)
	default:
		return aibackend.NoopCache{}
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("engine-router"))

	var reqRateLimiter middleware.RequestRateLimiter = unlimited{}
	if s.rateLimiter != nil {
		reqRateLimiter = s.rateLimiter
	}
	engineHandler := engine.NewHandler(s.engine)
	engineHandler.SetupRoutes(r, reqRateLimiter, s.config.SimulationRateLimitPerMin, s.metricsManager)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET").Name("root")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.engine.Close()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if closeErr := s.redisClient.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client conn: %w", closeErr))
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return err
}

type unlimited struct{}

func (unlimited) Allow(_ context.Context, _ string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: limit.Burst}, nil
}

// lockedRand is a math/rand source safe for the concurrent http handlers.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}
