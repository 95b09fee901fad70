package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseHelpers(t *testing.T) {
	testJson := `{"paperId":"1"}`

	for _, tc := range []struct {
		name        string
		write       func(w http.ResponseWriter)
		status      int
		contentType string
		body        string
	}{
		{
			name:        "bytes",
			write:       func(w http.ResponseWriter) { WriteResponseBytes(w, ContentType.JSON, []byte(testJson), http.StatusCreated) },
			status:      http.StatusCreated,
			contentType: ContentType.JSON,
			body:        testJson,
		},
		{
			name:        "string",
			write:       func(w http.ResponseWriter) { WriteResponse(w, ContentType.Text, "too many", http.StatusTooManyRequests) },
			status:      http.StatusTooManyRequests,
			contentType: ContentType.Text,
			body:        "too many",
		},
		{
			name:        "text ok",
			write:       func(w http.ResponseWriter) { WriteTextResponseOK(w, "2025-08-20") },
			status:      http.StatusOK,
			contentType: ContentType.Text,
			body:        "2025-08-20",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
