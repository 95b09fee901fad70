package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRateLimiter struct {
	allowed int
	err     error
	keys    []string
	limits  []redis_rate.Limit
}

func (l *testRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	l.keys = append(l.keys, key)
	l.limits = append(l.limits, limit)
	if l.err != nil {
		return nil, l.err
	}
	return &redis_rate.Result{
		Limit:      limit,
		Allowed:    l.allowed,
		RetryAfter: 2 * time.Second,
	}, nil
}

func TestRateLimit(t *testing.T) {
	for _, tc := range []struct {
		name           string
		method         string
		limiter        *testRateLimiter
		expectedStatus int
		expectedCalled bool
		expectedLimits int
		limitedCount   float64
	}{
		{
			name:           "allowed",
			method:         "POST",
			limiter:        &testRateLimiter{allowed: 1},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
			expectedLimits: 1,
		},
		{
			name:           "limited",
			method:         "POST",
			limiter:        &testRateLimiter{allowed: 0},
			expectedStatus: http.StatusTooManyRequests,
			expectedLimits: 1,
			limitedCount:   1,
		},
		{
			name:           "limiter down",
			method:         "POST",
			limiter:        &testRateLimiter{err: errors.New("redis down")},
			expectedStatus: http.StatusInternalServerError,
			expectedLimits: 1,
		},
		{
			name:           "preflight not counted",
			method:         "OPTIONS",
			limiter:        &testRateLimiter{allowed: 0},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			metricsManager := metrics.NewTestManager()
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			rr := httptest.NewRecorder()
			RateLimit(tc.limiter, "simulate", 10, metricsManager)(next).
				ServeHTTP(rr, httptest.NewRequest(tc.method, "/simulate", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedCalled, called)
			require.Len(t, tc.limiter.limits, tc.expectedLimits)
			for i := range tc.limiter.limits {
				assert.Equal(t, "simulate", tc.limiter.keys[i])
				assert.Equal(t, redis_rate.PerMinute(10), tc.limiter.limits[i])
			}
			assert.Equal(t, tc.limitedCount, testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
			if tc.expectedStatus == http.StatusTooManyRequests {
				assert.Equal(t, "2", rr.Header().Get("Retry-After"))
				assert.Equal(t, "retry after 2 seconds", rr.Body.String())
			}
		})
	}
}
