package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCors(t *testing.T) {
	allowedOrigins := []string{"http://localhost:5173/", "https://fitpath.example.com"}

	testCases := []struct {
		name       string
		origin     string
		userAgent  string
		expectCors bool
	}{
		{name: "dashboard origin", origin: "http://localhost:5173", expectCors: true},
		{name: "configured origin", origin: "https://fitpath.example.com", expectCors: true},
		{name: "unknown origin", origin: "https://www.notallowed.com"},
		{name: "curl", userAgent: "curl/8.4.0", expectCors: true},
		{name: "test agent", userAgent: "test-agent", expectCors: true},
		{name: "unknown agent", userAgent: "UnknownAgent/1.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest("GET", "/confidence", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("User-Agent", tc.userAgent)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			Cors(allowedOrigins)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectCors, called)
			if tc.expectCors {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Equal(t, tc.origin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Equal(t, http.StatusForbidden, rr.Code)
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
